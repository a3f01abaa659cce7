package systems

import (
	"math"

	"github.com/decker502/firesim/internal/random"
	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/game"
)

// autoFireEpsilon 累计模拟时间的浮点误差容忍
const autoFireEpsilon = 1e-9

// BurstEmitter 爆炸生成接口，由 ParticleSystem 实现
type BurstEmitter interface {
	SpawnBurst(x, y, power float64, count int) int
}

// ProjectileSystem 管理抛射体：开火、自动开火、积分、碰撞处理和移除
//
// 每个抛射体每步只处理一种碰撞，按以下优先级，先匹配者生效：
//  1. 地面：反弹（|vy| > 180）或落地爆炸
//  2. 目标：命中爆炸，目标随机偏移
//  3. 越界：直接移除
type ProjectileSystem struct {
	world  *game.World
	bursts BurstEmitter
	rng    *random.Source

	// lastAutoFire 上一次自动开火的模拟时间
	lastAutoFire float64
}

// NewProjectileSystem 创建抛射体系统
//
// 参数:
//   - w: 世界状态
//   - bursts: 爆炸生成器（通常是 ParticleSystem）
//   - rng: 随机源，用于目标偏移
func NewProjectileSystem(w *game.World, bursts BurstEmitter, rng *random.Source) *ProjectileSystem {
	return &ProjectileSystem{
		world:        w,
		bursts:       bursts,
		rng:          rng,
		lastAutoFire: math.Inf(-1),
	}
}

// Spawn 从 (ox, oy) 朝 (tx, ty) 以 speed 发射
// 距离小于 MinFireDistance 时静默忽略；容量已满时拒绝并计数
func (s *ProjectileSystem) Spawn(ox, oy, tx, ty, speed float64) bool {
	dx := tx - ox
	dy := ty - oy
	d := math.Hypot(dx, dy)
	if d < config.MinFireDistance || math.IsNaN(d) {
		return false
	}
	return s.add(ox, oy, dx/d*speed, dy/d*speed)
}

// SpawnAngle 从 (ox, oy) 沿 angle 方向以 speed 发射
func (s *ProjectileSystem) SpawnAngle(ox, oy, angle, speed float64) bool {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return false
	}
	return s.add(ox, oy, math.Cos(angle)*speed, math.Sin(angle)*speed)
}

// FireAt 从炮口朝 (x, y) 发射，速度取自配置
func (s *ProjectileSystem) FireAt(x, y float64) bool {
	w := s.world
	return s.Spawn(w.OriginX, w.OriginY, x, y, w.Config.ProjectileSpeed)
}

// FireAlongAim 沿当前瞄准方向发射
func (s *ProjectileSystem) FireAlongAim() bool {
	w := s.world
	return s.SpawnAngle(w.OriginX, w.OriginY, w.AimAngle, w.Config.ProjectileSpeed)
}

func (s *ProjectileSystem) add(x, y, vx, vy float64) bool {
	stats := &s.world.Stats
	if !s.world.Projectiles.Add(components.NewProjectile(x, y, vx, vy)) {
		stats.ProjectilesRejected++
		return false
	}
	stats.ProjectilesFired++
	return true
}

// autoFire 按住开火时，每 1/AutoFireRate 秒沿瞄准方向发射一次
// 冷却在容量拒绝时同样重新计时
func (s *ProjectileSystem) autoFire() {
	w := s.world
	rate := w.Config.AutoFireRate
	if rate <= 0 {
		return
	}
	if w.Time-s.lastAutoFire+autoFireEpsilon >= 1/rate {
		s.FireAlongAim()
		s.lastAutoFire = w.Time
	}
}

// ResetAutoFire 清除自动开火冷却，仅在重置模拟时使用
func (s *ProjectileSystem) ResetAutoFire() {
	s.lastAutoFire = math.Inf(-1)
}

// Update 自动开火，然后推进所有抛射体并处理碰撞
// 本 tick 新发射的抛射体同样会被推进
func (s *ProjectileSystem) Update(dt float64) {
	w := s.world
	if w.HoldingFire {
		s.autoFire()
	}

	cfg := w.Config
	env := cfg.Environment()
	groundY := cfg.GroundY()

	for _, p := range w.Projectiles.Items() {
		if !p.Alive() {
			continue
		}
		p.Step(dt, env)

		if p.Y >= groundY {
			s.resolveGround(p, groundY)
			continue
		}
		if w.Target.Contains(p.X, p.Y) {
			s.resolveHit(p)
			continue
		}
		if s.outOfBounds(p) {
			p.Kill()
			w.Stats.OutOfBounds++
		}
	}

	w.Projectiles.Sweep()
}

// resolveGround 触地：位置钳制到地面，按竖直速度决定反弹或落地
func (s *ProjectileSystem) resolveGround(p *components.ProjectileComponent, groundY float64) {
	stats := &s.world.Stats
	p.Y = groundY

	if math.Abs(p.VY) > config.BounceSpeedThreshold {
		p.VY = -p.VY * config.BounceRestitution
		p.VX *= config.BounceFriction
		stats.Bounces++
		s.bursts.SpawnBurst(p.X, p.Y-config.SparkBurstLift, config.SparkBurstPower, config.SparkBurstCount)
		return
	}

	p.Kill()
	stats.Settles++
	s.bursts.SpawnBurst(p.X, p.Y, config.SettleBurstPower, config.SettleBurstCount)
}

// resolveHit 命中目标：移除抛射体，大爆炸，目标随机偏移
func (s *ProjectileSystem) resolveHit(p *components.ProjectileComponent) {
	w := s.world
	p.Kill()
	w.Stats.Hits++
	s.bursts.SpawnBurst(p.X, p.Y, config.HitBurstPower, config.HitBurstCount)

	dx := s.rng.Range(-config.TargetNudgeX, config.TargetNudgeX)
	dy := s.rng.Range(-config.TargetNudgeY, config.TargetNudgeY)
	w.Target.Nudge(dx, dy, float64(w.Config.Width), w.Config.GroundY())
}

func (s *ProjectileSystem) outOfBounds(p *components.ProjectileComponent) bool {
	cfg := s.world.Config
	return p.X < -config.OutOfBoundsMarginX ||
		p.X > float64(cfg.Width)+config.OutOfBoundsMarginX ||
		p.Y < -config.OutOfBoundsMarginY ||
		p.Y > float64(cfg.Height)+config.OutOfBoundsMarginY
}
