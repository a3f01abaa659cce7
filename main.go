// Command firesim 抛射体火焰模拟器的桌面端
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-preset <name>       Built-in preset (default, stress, windy, moon, legacy)
//	-config <path>       YAML file layered on top of the preset
//	-set name=value      Override gravity, airDrag, wind, speed or autoFireRate
//	-seed <n>            Random seed (0 = time based)
//	-profile cpu|mem     Write a profile to the working directory
//	-dump-config         Print the resolved config and exit
//	-list-presets        List built-in presets and exit
//	-mute                Disable sound
//	-verbose             Enable verbose logging
//
// Controls:
//
//	Mouse             - Aim
//	Click             - Fire toward cursor
//	Space (hold)      - Rapid fire along the aim
//	Enter             - Single shot along the aim
//	Arrow keys        - Nudge aim
//	[ / ]             - Wind -10 / +10
//	D                 - Toggle debug overlay
//	R                 - Reset
//	F11               - Toggle fullscreen
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/firesim/data"
	"github.com/decker502/firesim/internal/cli"
	"github.com/decker502/firesim/pkg/app"
	"github.com/decker502/firesim/pkg/embedded"
)

func main() {
	os.Exit(run())
}

// run 返回进程退出码，defer 在退出前执行（包括关闭 profile）
func run() int {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()
	opts.SetupLogging()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	cfg, err := opts.LoadWorldConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		return 2
	}
	if done, err := opts.HandleInfoFlags(os.Stdout, cfg); done {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	stop, err := opts.StartProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer stop()

	gameApp, err := app.NewApp(app.Config{
		Verbose: opts.Verbose,
		World:   cfg,
		Seed:    opts.Seed,
		Mute:    opts.Mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		return 1
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Projectile Fire Simulator")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("[Main] RunGame error: %v", err)
		return 1
	}
	log.Printf("[Main] Exit after %d frames", gameApp.Simulation().World().Frame)
	return 0
}
