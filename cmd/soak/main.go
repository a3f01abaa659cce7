// Command soak 无界面运行模拟并输出统计
//
// 用于检查长时间自动开火下的容量约束，配合 -profile 做性能分析。
//
// Usage:
//
//	go run ./cmd/soak -preset stress -ticks 36000 -profile cpu
//
// 除公共参数（-preset、-config、-set、-seed、-profile 等）外：
//
//	-ticks <n>         Number of ticks (default 3600)
//	-dt <seconds>      Fixed step (default 1/60)
//	-hold              Hold fire for the whole run (default true)
//	-click-every <n>   Click at the target every n ticks (0 = never)
//	-format text|yaml  Report format
//
// 出现容量越界时退出码为 1。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/firesim/data"
	"github.com/decker502/firesim/internal/cli"
	"github.com/decker502/firesim/internal/soak"
	"github.com/decker502/firesim/pkg/embedded"
	"github.com/decker502/firesim/pkg/sim"
)

func main() {
	defaults := soak.DefaultOptions()

	var opts cli.Options
	opts.Register(flag.CommandLine)
	ticks := flag.Int("ticks", defaults.Ticks, "Number of ticks to run")
	dt := flag.Float64("dt", defaults.DT, "Fixed step in seconds")
	hold := flag.Bool("hold", defaults.HoldFire, "Hold fire for the whole run")
	clickEvery := flag.Int("click-every", 0, "Click at the target every n ticks (0 = never)")
	format := flag.String("format", "text", "Report format: text or yaml")
	flag.Parse()
	opts.SetupLogging()

	embedded.Init(data.FS)

	cfg, err := opts.LoadWorldConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(2)
	}
	if done, err := opts.HandleInfoFlags(os.Stdout, cfg); done {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	stop, err := opts.StartProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	report, err := soak.Run(sim.New(cfg, opts.Seed), soak.Options{
		Ticks:      *ticks,
		DT:         *dt,
		HoldFire:   *hold,
		ClickEvery: *clickEvery,
	})
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := report.Write(os.Stdout, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if report.Violations > 0 {
		os.Exit(1)
	}
}
