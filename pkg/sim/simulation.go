// Package sim 驱动模拟：钳制时间步长、依次执行抛射体和粒子系统、应用输入事件
//
// Simulation 本身不是并发安全的。所有方法必须在同一个 goroutine 中调用；
// 跨 goroutine 的渲染方通过 Run 回调拿到的 Snapshot 读取状态。
package sim

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/firesim/internal/random"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/game"
	"github.com/decker502/firesim/pkg/systems"
)

// Simulation 一个模拟会话
type Simulation struct {
	world       *game.World
	rng         *random.Source
	projectiles *systems.ProjectileSystem
	particles   *systems.ParticleSystem
	clock       Clock
}

// New 创建模拟会话
//
// 参数:
//   - cfg: 世界配置，会被直接持有，运行时修改立即生效
//   - seed: 随机种子，0 表示使用当前时间
func New(cfg *config.WorldConfig, seed int64) *Simulation {
	world := game.NewWorld(cfg)
	rng := random.New(seed)
	particles := systems.NewParticleSystem(world, rng)
	projectiles := systems.NewProjectileSystem(world, particles, rng)

	log.Printf("[Simulation] created: %dx%d, seed=%d, capacity=%d/%d",
		cfg.Width, cfg.Height, rng.Seed(), cfg.MaxProjectiles, cfg.MaxParticles)

	return &Simulation{
		world:       world,
		rng:         rng,
		projectiles: projectiles,
		particles:   particles,
	}
}

// World 返回世界状态（仅限拥有模拟的 goroutine 使用）
func (s *Simulation) World() *game.World { return s.world }

// Config 返回共享配置
func (s *Simulation) Config() *config.WorldConfig { return s.world.Config }

// Seed 实际使用的随机种子
func (s *Simulation) Seed() int64 { return s.rng.Seed() }

// Projectiles 抛射体系统
func (s *Simulation) Projectiles() *systems.ProjectileSystem { return s.projectiles }

// Particles 粒子系统
func (s *Simulation) Particles() *systems.ParticleSystem { return s.particles }

// Tick 执行一个 tick：钳制 dt，先推进抛射体（含自动开火），再推进粒子
func (s *Simulation) Tick(dt float64) {
	dt = ClampDT(dt)
	w := s.world
	w.Time += dt
	w.Frame++

	s.projectiles.Update(dt)
	s.particles.Update(dt)
}

// Step 用墙钟时间驱动一个 tick，返回实际使用的 dt
func (s *Simulation) Step(now time.Time) float64 {
	dt := s.clock.Advance(now)
	s.Tick(dt)
	return dt
}

// Snapshot 当前状态的只读副本
func (s *Simulation) Snapshot() *game.Snapshot {
	return s.world.Snapshot()
}

// SnapshotInto 把当前状态写入 dst，复用其切片
func (s *Simulation) SnapshotInto(dst *game.Snapshot) {
	s.world.SnapshotInto(dst)
}

// Apply 应用一个输入事件
// 只有 SetParam 可能返回错误，失败时原值保持不变
func (s *Simulation) Apply(ev Event) error {
	w := s.world

	switch ev.Kind {
	case EventPointerMove:
		w.AimAt(ev.X, ev.Y)
	case EventClick:
		w.AimAt(ev.X, ev.Y)
		s.projectiles.FireAt(ev.X, ev.Y)
	case EventFire:
		s.projectiles.FireAlongAim()
	case EventFireHold:
		// 冷却跨越松开保留，快速连按同样受开火频率限制
		w.HoldingFire = ev.Down
	case EventAimNudge:
		w.NudgeAim(ev.Delta)
	case EventToggleDebug:
		w.ShowDebug = !w.ShowDebug
	case EventWindAdjust:
		w.Config.AdjustWind(ev.Delta)
	case EventSetParam:
		if err := w.Config.Set(ev.Name, ev.Value); err != nil {
			log.Printf("[Simulation] rejected parameter %s=%q: %v", ev.Name, ev.Value, err)
			return err
		}
		log.Printf("[Simulation] parameter %s set to %s", ev.Name, ev.Value)
	case EventReset:
		w.Reset()
		s.projectiles.ResetAutoFire()
		s.clock.Reset()
	default:
		return fmt.Errorf("unknown event kind %v", ev.Kind)
	}
	return nil
}

// SetGravity 设置重力，非法值返回错误且不修改
func (s *Simulation) SetGravity(v float64) error { return s.world.Config.SetGravity(v) }

// SetAirDrag 设置空气阻力，必须在 (0, 1]
func (s *Simulation) SetAirDrag(v float64) error { return s.world.Config.SetAirDrag(v) }

// SetWind 设置风力
func (s *Simulation) SetWind(v float64) error { return s.world.Config.SetWind(v) }

// SetCapacity 修改容量上限并同步到实体集合
func (s *Simulation) SetCapacity(maxProjectiles, maxParticles int) error {
	if maxProjectiles <= 0 || maxParticles <= 0 {
		return fmt.Errorf("capacity must be > 0, got %d/%d: %w",
			maxProjectiles, maxParticles, config.ErrInvalidValue)
	}
	s.world.Config.MaxProjectiles = maxProjectiles
	s.world.Config.MaxParticles = maxParticles
	s.world.SyncCapacity()
	return nil
}
