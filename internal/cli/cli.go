// Package cli 各个可执行程序共用的命令行参数：预设、配置文件、参数覆盖、随机种子、日志和性能分析
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/embedded"
)

// DefaultPreset 未指定 -preset 时使用的预设
const DefaultPreset = "default"

// multiFlag 可重复的字符串参数
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// Options 公共命令行参数
type Options struct {
	Preset      string
	ConfigPath  string
	Overrides   []string
	Seed        int64
	Verbose     bool
	Mute        bool
	DumpConfig  bool
	ListPresets bool
	Profile     string
}

// Register 在 fs 上注册公共参数
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.Preset, "preset", DefaultPreset, "Built-in preset name (see -list-presets)")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML file layered on top of the preset")
	fs.Var((*multiFlag)(&o.Overrides), "set", "Override a parameter, name=value (repeatable)")
	fs.Int64Var(&o.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.BoolVar(&o.Verbose, "verbose", false, "Enable verbose logging (default off)")
	fs.BoolVar(&o.Mute, "mute", false, "Disable sound")
	fs.BoolVar(&o.DumpConfig, "dump-config", false, "Print the resolved config as YAML and exit")
	fs.BoolVar(&o.ListPresets, "list-presets", false, "List built-in presets and exit")
	fs.StringVar(&o.Profile, "profile", "", "Write a profile: cpu or mem")
}

// SetupLogging 未启用 -verbose 时关闭日志输出
func (o *Options) SetupLogging() {
	if !o.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// LoadWorldConfig 按 预设 → 配置文件 → -set 的顺序构建世界配置
// 预设从嵌入文件系统读取，调用前必须先 embedded.Init()
func (o *Options) LoadWorldConfig() (*config.WorldConfig, error) {
	preset, err := embedded.ReadPreset(o.Preset)
	if err != nil {
		names, _ := embedded.PresetNames()
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
	}

	var file []byte
	if o.ConfigPath != "" {
		file, err = os.ReadFile(o.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read world config: %w", err)
		}
	}

	cfg, err := config.ParseWorldConfigLayers(preset, file)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(o.Overrides); err != nil {
		return nil, err
	}
	log.Printf("[Config] preset=%s file=%q overrides=%v", o.Preset, o.ConfigPath, o.Overrides)
	return cfg, nil
}

// Dump 打印配置 YAML
func Dump(w io.Writer, cfg *config.WorldConfig) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PrintPresets 打印内置预设名称
func PrintPresets(w io.Writer) error {
	names, err := embedded.PresetNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

// HandleInfoFlags 处理 -list-presets 和 -dump-config
// 返回 true 表示已输出信息，调用方应直接退出
func (o *Options) HandleInfoFlags(w io.Writer, cfg *config.WorldConfig) (bool, error) {
	if o.ListPresets {
		return true, PrintPresets(w)
	}
	if o.DumpConfig {
		return true, Dump(w, cfg)
	}
	return false, nil
}

// StartProfile 按 -profile 启动性能分析，返回的函数在退出前调用
func (o *Options) StartProfile() (stop func(), err error) {
	switch o.Profile {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", o.Profile)
}
