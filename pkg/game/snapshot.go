package game

import (
	"image/color"
	"math"

	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/curve"
)

// ProjectileView 渲染用的抛射体只读视图
type ProjectileView struct {
	X, Y   float64
	VX, VY float64
	Flame  curve.Flame
}

// ParticleView 渲染用的粒子只读视图
type ParticleView struct {
	X, Y      float64
	Size      float64 // 已按剩余寿命缩放
	Color     color.RGBA
	LifeRatio float64
}

// Snapshot 一个 tick 结束后的世界只读副本
//
// 切片按实体插入顺序排列。渲染线程只读取 Snapshot，不访问 World，
// 以保持单写者约束。
type Snapshot struct {
	Frame uint64
	Time  float64

	Width, Height int
	GroundY       float64

	OriginX, OriginY float64
	AimAngle         float64

	Target components.Target
	Wind   float64

	HoldingFire bool
	ShowDebug   bool

	Projectiles []ProjectileView
	Particles   []ParticleView

	Stats Stats
}

// Snapshot 创建一份新的快照
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{}
	w.SnapshotInto(s)
	return s
}

// SnapshotInto 把当前状态写入 s，复用 s 中已有的切片容量
func (w *World) SnapshotInto(s *Snapshot) {
	cfg := w.Config

	s.Frame = w.Frame
	s.Time = w.Time
	s.Width = cfg.Width
	s.Height = cfg.Height
	s.GroundY = cfg.GroundY()
	s.OriginX = w.OriginX
	s.OriginY = w.OriginY
	s.AimAngle = w.AimAngle
	s.Target = w.Target
	s.Wind = cfg.Wind
	s.HoldingFire = w.HoldingFire
	s.ShowDebug = w.ShowDebug
	s.Stats = w.Stats

	s.Projectiles = s.Projectiles[:0]
	w.Projectiles.Each(func(p *components.ProjectileComponent) {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY,
			Flame: curve.NewFlame(p.X, p.Y, p.VX, p.VY),
		})
	})

	s.Particles = s.Particles[:0]
	w.Particles.Each(func(p *components.ParticleComponent) {
		s.Particles = append(s.Particles, ParticleView{
			X: p.X, Y: p.Y,
			Size:      p.RenderSize(),
			Color:     p.Color,
			LifeRatio: p.LifeRatio(),
		})
	})
}

// AimDirection 瞄准方向的单位向量
func (s *Snapshot) AimDirection() (float64, float64) {
	return math.Cos(s.AimAngle), math.Sin(s.AimAngle)
}

// Clone 深拷贝，用于跨 goroutine 传递
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Projectiles = append([]ProjectileView(nil), s.Projectiles...)
	c.Particles = append([]ParticleView(nil), s.Particles...)
	return &c
}
