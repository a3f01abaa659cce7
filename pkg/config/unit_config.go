package config

// 单位配置常量
// 本文件定义了抛射体、粒子、目标的碰撞与爆炸参数
// 这些值属于玩法手感，不开放到 YAML；可调的世界参数见 world_config.go

// Projectile Configuration (抛射体配置)
const (
	// ProjectileRadius 抛射体碰撞半径（像素）
	ProjectileRadius = 5.0

	// BounceSpeedThreshold 触地反弹的竖直速度阈值（像素/秒）
	// |vy| 大于此值时反弹，否则落地停止并爆炸
	BounceSpeedThreshold = 180.0

	// BounceRestitution 反弹后竖直速度保留比例（方向取反）
	BounceRestitution = 0.35

	// BounceFriction 反弹时水平速度保留比例
	BounceFriction = 0.6

	// OutOfBoundsMarginX 抛射体水平越界余量（像素）
	OutOfBoundsMarginX = 200.0

	// OutOfBoundsMarginY 抛射体竖直越界余量（像素）
	OutOfBoundsMarginY = 500.0

	// MinFireDistance 点击位置与炮口距离小于此值时忽略开火
	MinFireDistance = 1.0
)

// Burst Configuration (爆炸粒子配置)
// 实际生成的粒子数 = floor(Count * Power)
const (
	// SparkBurstPower 反弹火花强度
	SparkBurstPower = 0.4
	// SparkBurstCount 反弹火花基础数量
	SparkBurstCount = 12
	// SparkBurstLift 火花生成点相对地面的上移量（像素）
	SparkBurstLift = 6.0

	// SettleBurstPower 落地爆炸强度
	SettleBurstPower = 1.0
	// SettleBurstCount 落地爆炸基础数量
	SettleBurstCount = 40

	// HitBurstPower 命中目标的爆炸强度
	HitBurstPower = 1.8
	// HitBurstCount 命中目标的爆炸基础数量
	HitBurstCount = 120
)

// Particle Configuration (粒子配置)
const (
	// ParticleBaseSpeed 粒子初速度上限基数，实际上限 = ParticleBaseSpeed * sqrt(power)
	ParticleBaseSpeed = 300.0

	// ParticleVerticalSquash 粒子竖直初速度压缩比例
	ParticleVerticalSquash = 0.6

	// ParticleLift 粒子向上的初始冲量（乘以 power，像素/秒）
	ParticleLift = 150.0

	// ParticleWindCarry 生成时从风力继承的水平速度比例
	ParticleWindCarry = 0.2

	// ParticleLifeMin / ParticleLifeMax 粒子寿命范围（秒）
	ParticleLifeMin = 0.4
	ParticleLifeMax = 1.2

	// ParticleSizeMin / ParticleSizeMax 粒子尺寸范围（像素）
	ParticleSizeMin = 2.0
	ParticleSizeMax = 6.0

	// 粒子颜色：橙-红-黄色带
	ParticleRedMin   = 200
	ParticleRedMax   = 255
	ParticleGreenMin = 50
	ParticleGreenMax = 180
	ParticleBlue     = 20

	// ParticleBoundsMargin 粒子边界余量（像素）
	ParticleBoundsMargin = 500.0
)

// Target Configuration (目标配置)
const (
	// TargetNudgeX 命中后目标水平随机偏移范围 ±TargetNudgeX（像素）
	TargetNudgeX = 12.0
	// TargetNudgeY 命中后目标竖直随机偏移范围 ±TargetNudgeY（像素）
	TargetNudgeY = 8.0
)

// Cannon Configuration (炮台配置)
const (
	// AimNudgeStep 方向键每次调整的瞄准角度（弧度，约 3.4°）
	AimNudgeStep = 0.06

	// WindStep 每次按键调整的风力（像素/秒²）
	WindStep = 10.0

	// BarrelLength 炮管绘制长度（像素）
	BarrelLength = 60.0

	// MaxDeltaTime 单帧最大时间步长（秒），防止卡顿后积分误差过大
	MaxDeltaTime = 1.0 / 15.0
)
