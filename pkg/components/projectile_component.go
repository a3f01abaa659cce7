package components

import (
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/physics"
)

// ProjectileComponent 抛射体（炮弹）
//
// 由 ProjectileSystem 独占管理：开火时创建，落地停止、命中目标或飞出边界时移除。
// 物理参数（重力、阻力、风力）不保存在实体上，每次 Step 由调用方传入。
type ProjectileComponent struct {
	physics.Body

	// Age 自发射以来经过的时间（秒）
	Age float64
	// Radius 碰撞半径（像素）
	Radius float64

	dead bool
}

// NewProjectile 在 (x, y) 处以速度 (vx, vy) 创建抛射体
func NewProjectile(x, y, vx, vy float64) *ProjectileComponent {
	return &ProjectileComponent{
		Body:   physics.Body{X: x, Y: y, VX: vx, VY: vy},
		Radius: config.ProjectileRadius,
	}
}

// Step 完整运动学积分
func (p *ProjectileComponent) Step(dt float64, env physics.Environment) {
	if p.dead || dt <= 0 {
		return
	}
	physics.Integrate(&p.Body, dt, env)
	p.Age += dt
}

// Alive 是否存活
func (p *ProjectileComponent) Alive() bool { return !p.dead }

// Kill 标记移除，在下一次 Sweep 时从集合中删除
func (p *ProjectileComponent) Kill() { p.dead = true }
