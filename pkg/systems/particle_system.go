package systems

import (
	"image/color"
	"math"

	"github.com/decker502/firesim/internal/random"
	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/game"
)

// ParticleSystem 管理爆炸粒子：生成爆炸、推进积分、剔除死亡和越界的粒子
//
// 粒子集合受 MaxParticles 限制。超出容量的粒子逐个丢弃，
// 而不是整批拒绝，所以一次爆炸可能只生成一部分粒子。
type ParticleSystem struct {
	world *game.World
	rng   *random.Source
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(w *game.World, rng *random.Source) *ParticleSystem {
	return &ParticleSystem{
		world: w,
		rng:   rng,
	}
}

// BurstSize 一次爆炸请求的粒子数：floor(count * power)
func BurstSize(power float64, count int) int {
	if power <= 0 || count <= 0 || math.IsNaN(power) || math.IsInf(power, 0) {
		return 0
	}
	return int(math.Floor(float64(count) * power))
}

// SpawnBurst 在 (x, y) 处生成一次爆炸
//
// 参数:
//   - x, y: 爆炸中心
//   - power: 强度，影响粒子数量、速度和向上的冲量
//   - count: 基础数量，<= 0 时不生成任何粒子
//
// 返回:
//   - int: 实际加入集合的粒子数
func (ps *ParticleSystem) SpawnBurst(x, y, power float64, count int) int {
	n := BurstSize(power, count)
	if n == 0 {
		return 0
	}

	wind := ps.world.Config.Wind
	maxSpeed := config.ParticleBaseSpeed * math.Sqrt(power)
	stats := &ps.world.Stats

	spawned := 0
	for i := 0; i < n; i++ {
		angle := ps.rng.Angle()
		speed := ps.rng.Range(0, maxSpeed)
		vx := math.Cos(angle)*speed + wind*config.ParticleWindCarry
		vy := math.Sin(angle)*speed*config.ParticleVerticalSquash - config.ParticleLift*power
		life := ps.rng.Range(config.ParticleLifeMin, config.ParticleLifeMax)
		size := ps.rng.Range(config.ParticleSizeMin, config.ParticleSizeMax)
		clr := color.RGBA{
			R: uint8(ps.rng.IntRange(config.ParticleRedMin, config.ParticleRedMax)),
			G: uint8(ps.rng.IntRange(config.ParticleGreenMin, config.ParticleGreenMax)),
			B: config.ParticleBlue,
			A: 0xFF,
		}

		if ps.world.Particles.Add(components.NewParticle(x, y, vx, vy, life, size, clr)) {
			spawned++
		} else {
			stats.ParticlesDropped++
		}
	}

	stats.ParticlesSpawned += uint64(spawned)
	return spawned
}

// Update 推进所有粒子并移除寿命耗尽或越界的粒子
func (ps *ParticleSystem) Update(dt float64) {
	w := ps.world
	env := w.Config.Environment()

	w.Particles.StepAll(dt, env)
	for _, p := range w.Particles.Items() {
		if !p.Alive() {
			w.Stats.ParticlesExpired++
			continue
		}
		if !ps.InBounds(p.X, p.Y) {
			p.Kill()
			w.Stats.ParticlesCulled++
		}
	}

	w.Particles.Sweep()
}

// InBounds 粒子是否在保留区域内
//
//	symmetric: x ∈ [-500, W+500], y ∈ [-500, H+500]
//	legacy:    x ∈ [0, 2W],       y ∈ [-500, H+500]
func (ps *ParticleSystem) InBounds(x, y float64) bool {
	cfg := ps.world.Config
	width := float64(cfg.Width)
	height := float64(cfg.Height)
	margin := config.ParticleBoundsMargin

	if y < -margin || y > height+margin {
		return false
	}
	if cfg.ParticleBounds == config.BoundsLegacy {
		return x >= 0 && x <= 2*width
	}
	return x >= -margin && x <= width+margin
}
