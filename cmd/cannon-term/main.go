// Command cannon-term 抛射体火焰模拟器的终端版本
//
// 使用 tcell 把模拟画成字符网格，beep 合成开火、反弹、落地和命中音效。
//
// Usage:
//
//	go run ./cmd/cannon-term [flags]
//
// 除公共参数（-preset、-config、-set、-seed、-mute、-profile 等）外：
//
//	-fps <n>       Target frame rate (default 30)
//	-log <path>    Log file used with -verbose (default cannon-term.log)
//
// Controls:
//
//	Mouse          - Aim, left click fires
//	Space          - Toggle rapid fire (terminals report no key release)
//	Enter          - Single shot along the aim
//	Arrow keys     - Nudge aim
//	[ / ]          - Wind -10 / +10
//	D              - Toggle debug overlay
//	R              - Reset
//	Q/Escape       - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/firesim/data"
	"github.com/decker502/firesim/internal/audio"
	"github.com/decker502/firesim/internal/cli"
	"github.com/decker502/firesim/internal/term"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/embedded"
	"github.com/decker502/firesim/pkg/game"
	"github.com/decker502/firesim/pkg/sim"
)

var (
	fps     = flag.Int("fps", 30, "Target frame rate")
	logPath = flag.String("log", "cannon-term.log", "Log file used with -verbose")
)

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()
	opts.SetupLogging()

	// 终端被 tcell 接管，verbose 日志写到文件
	if opts.Verbose {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		log.SetOutput(f)
	}

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

	err = run(cfg, opts.Seed, opts.Mute)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run 初始化屏幕和音频，驱动模拟直到用户退出
func run(cfg *config.WorldConfig, seed int64, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.EnableMouse()
	screen.HideCursor()

	player := audio.NewPlayer()
	if !mute {
		if err := player.Init(); err != nil {
			// 没有音频设备时静音运行
			log.Printf("[Audio] initialization failed: %v", err)
		}
	}
	defer player.Close()

	s := sim.New(cfg, seed)
	log.Printf("[Main] seed=%d fps=%d", s.Seed(), *fps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cols, rows := screen.Size()
	events := make(chan sim.Event, 64)
	go pollInput(ctx, cancel, screen, term.NewCanvas(cols, rows, cfg.Width, cfg.Height), events)

	canvas := term.NewCanvas(cols, rows, cfg.Width, cfg.Height)
	hint := game.HintText(*fps)

	err = sim.Run(ctx, s, *fps, events, func(snap *game.Snapshot) {
		if c, r := screen.Size(); c != canvas.Cols || r != canvas.Rows {
			canvas.Resize(c, r)
		}
		term.Render(canvas, snap, hint)
		flush(screen, canvas)
		player.Observe(snap.Stats)
	})
	log.Printf("[Main] exit after %d frames", s.World().Frame)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput 在独立 goroutine 中读取终端事件，翻译后交给模拟循环
// mapper 只用于鼠标坐标换算，不参与绘制
func pollInput(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, mapper *term.Canvas, out chan<- sim.Event) {
	in := term.NewInput()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// 屏幕已关闭
			return
		}

		var events []sim.Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			var quit bool
			events, quit = in.Key(ev.Key(), ev.Rune())
			if quit {
				cancel()
				return
			}
		case *tcell.EventMouse:
			col, row := ev.Position()
			events = in.Mouse(mapper, col, row, ev.Buttons())
		case *tcell.EventResize:
			mapper.Resize(ev.Size())
			screen.Sync()
		}

		for _, e := range events {
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

// flush 把网格内容写到屏幕
func flush(screen tcell.Screen, c *term.Canvas) {
	screen.Clear()
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			cell := c.At(col, row)
			if cell.Rune == 0 {
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B))
			screen.SetContent(col, row, cell.Rune, nil, tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(fg))
		}
	}
	screen.Show()
}
