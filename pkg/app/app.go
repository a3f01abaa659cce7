// Package app 提供模拟器的 ebiten 前端
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/game"
	"github.com/decker502/firesim/pkg/sim"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// World 世界配置，为 nil 时使用默认值
	World *config.WorldConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Mute 关闭音效
	Mute bool
}

// soundVolume 音效音量
const soundVolume = 0.6

// App 模拟器应用，实现 ebiten.Game 接口
//
// ebiten 在同一个 goroutine 中调用 Update 和 Draw，
// Update 负责应用输入和推进模拟，Draw 只读取 Update 末尾生成的快照。
type App struct {
	sim      *sim.Simulation
	input    InputMapper
	renderer *Renderer
	sound    *SoundManager // 静音或初始化失败时为 nil
	snap     game.Snapshot

	width, height int
	verbose       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	world := cfg.World
	if world == nil {
		world = config.DefaultWorldConfig()
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}

	s := sim.New(world, cfg.Seed)
	ebiten.SetTPS(world.TargetFPS)
	log.Printf("[App] TPS set to %d", world.TargetFPS)

	a := &App{
		sim:      s,
		renderer: NewRenderer(s.Seed()+1, world.TargetFPS),
		width:    world.Width,
		height:   world.Height,
		verbose:  cfg.Verbose,
	}
	if !cfg.Mute {
		sound, err := NewSoundManager(soundVolume)
		if err != nil {
			// 音效不是必需的，失败时静音运行
			log.Printf("[App] Warning: sound disabled: %v", err)
		} else {
			a.sound = sound
		}
	}

	s.SnapshotInto(&a.snap)
	return a, nil
}

// Update 更新模拟
// 每个 tick 调用一次；dt 取墙钟时间并钳制在 [0, 1/15]
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[App] Quit requested")
		return ebiten.Termination
	}

	// 输入在 tick 之前应用
	for _, ev := range a.input.Poll() {
		if err := a.sim.Apply(ev); err != nil {
			log.Printf("[App] input event %v: %v", ev.Kind, err)
		}
	}

	a.sim.Step(time.Now())
	a.sim.SnapshotInto(&a.snap)
	if a.sound != nil {
		a.sound.Observe(a.snap.Stats)
	}
	return nil
}

// Draw 绘制画面，只读取快照
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, &a.snap)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Simulation 返回模拟会话
func (a *App) Simulation() *sim.Simulation {
	return a.sim
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
