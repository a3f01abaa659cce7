package game

import (
	"math"

	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/ecs"
)

// InitialAimAngle 初始瞄准角度（右上 45°，屏幕坐标系 Y 向下）
const InitialAimAngle = -math.Pi / 4

// Stats 统计计数器
// 容量饱和属于正常稳态，不记日志，只在这里计数
type Stats struct {
	ProjectilesFired    uint64 `yaml:"projectilesFired"`    // 成功发射
	ProjectilesRejected uint64 `yaml:"projectilesRejected"` // 因容量上限被拒绝
	Bounces             uint64 `yaml:"bounces"`             // 触地反弹
	Settles             uint64 `yaml:"settles"`             // 落地停止
	Hits                uint64 `yaml:"hits"`                // 命中目标
	OutOfBounds         uint64 `yaml:"outOfBounds"`         // 飞出边界
	ParticlesSpawned    uint64 `yaml:"particlesSpawned"`    // 成功生成的粒子
	ParticlesDropped    uint64 `yaml:"particlesDropped"`    // 因容量上限被丢弃的粒子
	ParticlesExpired    uint64 `yaml:"particlesExpired"`    // 寿命耗尽
	ParticlesCulled     uint64 `yaml:"particlesCulled"`     // 越界剔除
}

// World 模拟的全部可变状态
//
// 只有一个写入者（模拟循环所在的 goroutine）。渲染方通过 Snapshot 读取，
// 不直接访问 World。
type World struct {
	// Config 会话共享配置（指针），运行时修改立即对所有系统生效
	Config *config.WorldConfig

	Target components.Target

	// 炮口与瞄准
	OriginX, OriginY float64
	AimAngle         float64

	// 输入状态
	HoldingFire bool
	ShowDebug   bool

	Projectiles *ecs.Store[*components.ProjectileComponent]
	Particles   *ecs.Store[*components.ParticleComponent]

	Stats Stats

	// Time 累计模拟时间（秒），Frame 已执行的 tick 数
	Time  float64
	Frame uint64
}

// NewWorld 根据配置创建世界
// cfg 被直接持有，不复制
func NewWorld(cfg *config.WorldConfig) *World {
	w := &World{
		Config:      cfg,
		AimAngle:    InitialAimAngle,
		Projectiles: ecs.NewStore[*components.ProjectileComponent](cfg.MaxProjectiles),
		Particles:   ecs.NewStore[*components.ParticleComponent](cfg.MaxParticles),
	}
	w.OriginX, w.OriginY = cfg.Origin()
	w.ResetTarget()
	return w
}

// ResetTarget 把目标放回初始位置
func (w *World) ResetTarget() {
	x, y := w.Config.TargetStart()
	w.Target = components.Target{X: x, Y: y, Radius: w.Config.Target.Radius}
}

// GroundY 地面 Y 坐标
func (w *World) GroundY() float64 {
	return w.Config.GroundY()
}

// AimAt 将瞄准角度指向 (x, y)
// 与炮口重合时保持原角度
func (w *World) AimAt(x, y float64) {
	dx := x - w.OriginX
	dy := y - w.OriginY
	if dx == 0 && dy == 0 {
		return
	}
	w.AimAngle = math.Atan2(dy, dx)
}

// NudgeAim 微调瞄准角度（弧度）
func (w *World) NudgeAim(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	w.AimAngle += delta
}

// SyncCapacity 配置中的容量变化后同步到实体集合
func (w *World) SyncCapacity() {
	w.Projectiles.SetCapacity(w.Config.MaxProjectiles)
	w.Particles.SetCapacity(w.Config.MaxParticles)
}

// Reset 清空所有实体和计数器，目标与瞄准回到初始状态
func (w *World) Reset() {
	w.Projectiles.Clear()
	w.Particles.Clear()
	w.Stats = Stats{}
	w.AimAngle = InitialAimAngle
	w.HoldingFire = false
	w.Time = 0
	w.Frame = 0
	w.OriginX, w.OriginY = w.Config.Origin()
	w.ResetTarget()
}
