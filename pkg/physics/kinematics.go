// Package physics 实现抛射体与粒子共用的运动学积分
//
// 所有坐标使用屏幕坐标系：X 向右为正，Y 向下为正，单位为像素，时间单位为秒。
package physics

import "math"

const (
	// DragReferenceHz 阻力归一化的参考频率
	//
	// AirDrag 的含义是"在 60Hz 下每次更新保留的速度比例"，
	// 积分时乘以 dt*60 换算到实际时间步长。这是一个近似：
	// 阻力强度近似与帧率无关，但在量纲上并不精确。
	DragReferenceHz = 60.0

	// ParticleGravityScale 粒子受到的重力比例（十分之一）
	ParticleGravityScale = 0.1
	// ParticleWindScale 粒子受到的风力比例（十分之三）
	ParticleWindScale = 0.3
)

// Environment 一次积分使用的环境参数
// 每次调用时从共享的 WorldConfig 读取，不会复制到实体上
type Environment struct {
	Gravity float64 // 重力加速度（像素/秒²，向下为正）
	Wind    float64 // 水平风力加速度（像素/秒²，向右为正）
	Drag    float64 // 空气阻力系数，0 < Drag <= 1，越接近 1 阻力越小
}

// Body 位置与速度
type Body struct {
	X, Y   float64 // 位置（像素）
	VX, VY float64 // 速度（像素/秒）
}

// Integrate 完整运动学积分：风力、重力、乘性阻力，再更新位置
//
//	vx += wind*dt; vy += gravity*dt
//	vx *= 1-(1-drag)*dt*60; vy 同理
//	x += vx*dt; y += vy*dt
func Integrate(b *Body, dt float64, env Environment) {
	b.VX += env.Wind * dt
	b.VY += env.Gravity * dt

	k := DragFactor(env.Drag, dt)
	b.VX *= k
	b.VY *= k

	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// IntegrateLight 粒子使用的轻量积分：十分之一重力、十分之三风力，无阻力
func IntegrateLight(b *Body, dt float64, env Environment) {
	b.VY += env.Gravity * dt * ParticleGravityScale
	b.VX += env.Wind * dt * ParticleWindScale

	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// DragFactor 返回时间步长 dt 内的速度保留系数
func DragFactor(drag, dt float64) float64 {
	return 1 - (1-drag)*dt*DragReferenceHz
}

// Speed 返回速度的模
func (b Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
