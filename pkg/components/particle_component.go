package components

import (
	"image/color"

	"github.com/decker502/firesim/pkg/physics"
)

// ParticleComponent 爆炸粒子
//
// 使用轻量积分（十分之一重力、十分之三风力、无阻力），
// 剩余寿命每步递减 dt，降到 0 以下即死亡。寿命只减不增。
type ParticleComponent struct {
	physics.Body

	// Size 基础尺寸（像素），渲染时按剩余寿命缩放
	Size float64
	// Color 粒子颜色
	Color color.RGBA

	life    float64
	maxLife float64
}

// NewParticle 创建粒子
//
// 参数:
//   - x, y: 初始位置
//   - vx, vy: 初始速度
//   - life: 寿命（秒），同时作为 MaxLife
//   - size: 基础尺寸
//   - clr: 颜色
func NewParticle(x, y, vx, vy, life, size float64, clr color.RGBA) *ParticleComponent {
	return &ParticleComponent{
		Body:    physics.Body{X: x, Y: y, VX: vx, VY: vy},
		Size:    size,
		Color:   clr,
		life:    life,
		maxLife: life,
	}
}

// Step 轻量积分并递减寿命
func (p *ParticleComponent) Step(dt float64, env physics.Environment) {
	if dt <= 0 {
		return
	}
	physics.IntegrateLight(&p.Body, dt, env)
	p.life -= dt
}

// Alive 剩余寿命大于 0
func (p *ParticleComponent) Alive() bool { return p.life > 0 }

// Kill 立即结束寿命（用于越界剔除）
func (p *ParticleComponent) Kill() {
	if p.life > 0 {
		p.life = 0
	}
}

// Life 剩余寿命（秒）
func (p *ParticleComponent) Life() float64 { return p.life }

// MaxLife 初始寿命（秒）
func (p *ParticleComponent) MaxLife() float64 { return p.maxLife }

// LifeRatio 剩余寿命比例，限制在 [0, 1]
func (p *ParticleComponent) LifeRatio() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	r := p.life / p.maxLife
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// RenderSize 渲染尺寸：size * (0.5 + 0.5*alpha)
func (p *ParticleComponent) RenderSize() float64 {
	return p.Size * (0.5 + 0.5*p.LifeRatio())
}
