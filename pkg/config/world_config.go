package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/firesim/pkg/physics"
)

var (
	// ErrInvalidValue 参数值非法（NaN、Inf 或超出范围）
	ErrInvalidValue = errors.New("invalid value")
	// ErrNotNumeric 参数文本不是数字
	ErrNotNumeric = errors.New("value is not numeric")
	// ErrUnknownParam 未知的参数名
	ErrUnknownParam = errors.New("unknown parameter")
)

// ParticleBounds 粒子越界判定策略
type ParticleBounds string

const (
	// BoundsSymmetric 对称边界：x ∈ [-500, W+500]，y ∈ [-500, H+500]
	BoundsSymmetric ParticleBounds = "symmetric"
	// BoundsLegacy 保留早期版本的不对称边界：x ∈ [0, 2W]，y ∈ [-500, H+500]
	BoundsLegacy ParticleBounds = "legacy"
)

// WorldConfig 世界配置
//
// 整个会话共享一个实例（通过指针持有），运行时修改对所有系统立即生效。
// 实体上不保存任何一份副本。
//
// 配置文件位置: data/presets/*.yaml
type WorldConfig struct {
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`
	// AirDrag 60Hz 下每帧速度保留比例，(0, 1]
	AirDrag float64 `yaml:"airDrag"`
	// Wind 水平风力（像素/秒²，正值向右）
	Wind float64 `yaml:"wind"`

	// ProjectileSpeed 抛射体初速度（像素/秒）
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	// AutoFireRate 按住开火时每秒发射数
	AutoFireRate float64 `yaml:"autoFireRate"`

	// MaxProjectiles 同时存在的抛射体上限
	MaxProjectiles int `yaml:"maxProjectiles"`
	// MaxParticles 同时存在的粒子上限
	MaxParticles int `yaml:"maxParticles"`

	// Width / Height 逻辑视口尺寸（像素）
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// GroundOffset 地面距视口底部的距离（像素）
	GroundOffset float64 `yaml:"groundOffset"`
	// CannonX 炮台 X 坐标，炮台位于地面上
	CannonX float64 `yaml:"cannonX"`

	// TargetFPS 目标帧率
	TargetFPS int `yaml:"targetFPS"`

	// ParticleBounds 粒子越界策略
	ParticleBounds ParticleBounds `yaml:"particleBounds"`

	// Target 目标初始摆放
	Target TargetPlacement `yaml:"target"`
}

// TargetPlacement 目标初始位置，相对视口右侧和地面的偏移
type TargetPlacement struct {
	// FromRight 距视口右边缘的距离（像素）
	FromRight float64 `yaml:"fromRight"`
	// AboveGround 距地面的高度（像素）
	AboveGround float64 `yaml:"aboveGround"`
	// Radius 目标半径（像素）
	Radius float64 `yaml:"radius"`
}

// DefaultWorldConfig 返回默认世界配置
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		Gravity:         700.0,
		AirDrag:         0.995,
		Wind:            0.0,
		ProjectileSpeed: 1200.0,
		AutoFireRate:    10.0,
		MaxProjectiles:  40,
		MaxParticles:    800,
		Width:           1000,
		Height:          700,
		GroundOffset:    40,
		CannonX:         80,
		TargetFPS:       60,
		ParticleBounds:  BoundsSymmetric,
		Target: TargetPlacement{
			FromRight:   160,
			AboveGround: 120,
			Radius:      36,
		},
	}
}

// LoadWorldConfig 加载世界配置
//
// 从指定路径加载 YAML 格式的配置文件，文件中未出现的字段保持默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/presets/default.yaml"）
//
// 返回:
//   - *WorldConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config: %w", err)
	}
	return ParseWorldConfig(data)
}

// ParseWorldConfig 从 YAML 数据解析世界配置
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	return ParseWorldConfigLayers(data)
}

// ParseWorldConfigLayers 依次把多份 YAML 叠加到默认配置上，后面的覆盖前面的
// 空的层会被跳过，全部叠加完成后统一校验
func ParseWorldConfigLayers(layers ...[]byte) (*WorldConfig, error) {
	config := DefaultWorldConfig()
	for i, data := range layers {
		if len(data) == 0 {
			continue
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse world config (layer %d): %w", i, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}

	return config, nil
}

// ApplyOverrides 应用 name=value 形式的参数覆盖（命令行 -set）
// 任意一项失败时返回错误，已成功的项保留
func (c *WorldConfig) ApplyOverrides(pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("override %q: expected name=value", pair)
		}
		if err := c.Set(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("override %q: %w", pair, err)
		}
	}
	return nil
}

// Marshal 序列化为 YAML
func (c *WorldConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal world config: %w", err)
	}
	return data, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 物理参数为有限数，阻力在 (0, 1]
//   - 尺寸、容量、帧率、发射速率为正
//   - 地面和目标位于视口内
func (c *WorldConfig) Validate() error {
	for name, v := range map[string]float64{
		"gravity":         c.Gravity,
		"wind":            c.Wind,
		"projectileSpeed": c.ProjectileSpeed,
		"groundOffset":    c.GroundOffset,
		"cannonX":         c.CannonX,
	} {
		if !isFinite(v) {
			return fmt.Errorf("%s: %w: %v", name, ErrInvalidValue, v)
		}
	}

	if err := checkDrag(c.AirDrag); err != nil {
		return fmt.Errorf("airDrag: %w", err)
	}
	if !isFinite(c.AutoFireRate) || c.AutoFireRate <= 0 {
		return fmt.Errorf("autoFireRate must be > 0, got %v", c.AutoFireRate)
	}
	if c.ProjectileSpeed <= 0 {
		return fmt.Errorf("projectileSpeed must be > 0, got %v", c.ProjectileSpeed)
	}
	if c.MaxProjectiles <= 0 {
		return fmt.Errorf("maxProjectiles must be > 0, got %d", c.MaxProjectiles)
	}
	if c.MaxParticles <= 0 {
		return fmt.Errorf("maxParticles must be > 0, got %d", c.MaxParticles)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("targetFPS must be > 0, got %d", c.TargetFPS)
	}
	if c.GroundOffset < 0 || c.GroundOffset >= float64(c.Height) {
		return fmt.Errorf("groundOffset %.1f puts the ground outside the viewport (height %d)",
			c.GroundOffset, c.Height)
	}
	if c.CannonX < 0 || c.CannonX > float64(c.Width) {
		return fmt.Errorf("cannonX %.1f outside the viewport (width %d)", c.CannonX, c.Width)
	}

	switch c.ParticleBounds {
	case BoundsSymmetric, BoundsLegacy:
	default:
		return fmt.Errorf("particleBounds must be %q or %q, got %q",
			BoundsSymmetric, BoundsLegacy, c.ParticleBounds)
	}

	t := c.Target
	if !isFinite(t.Radius) || t.Radius <= 0 {
		return fmt.Errorf("target radius must be > 0, got %v", t.Radius)
	}
	tx, ty := c.TargetStart()
	if tx-t.Radius < 0 || tx+t.Radius > float64(c.Width) || ty-t.Radius < 0 || ty+t.Radius > c.GroundY() {
		return fmt.Errorf("target circle (%.1f, %.1f) r=%.1f is not inside the viewport above the ground",
			tx, ty, t.Radius)
	}

	return nil
}

// GroundY 地面的 Y 坐标
func (c *WorldConfig) GroundY() float64 {
	return float64(c.Height) - c.GroundOffset
}

// Origin 炮口位置（位于地面上）
func (c *WorldConfig) Origin() (float64, float64) {
	return c.CannonX, c.GroundY()
}

// TargetStart 目标初始圆心
func (c *WorldConfig) TargetStart() (float64, float64) {
	return float64(c.Width) - c.Target.FromRight, c.GroundY() - c.Target.AboveGround
}

// Environment 当前的积分环境参数
func (c *WorldConfig) Environment() physics.Environment {
	return physics.Environment{
		Gravity: c.Gravity,
		Wind:    c.Wind,
		Drag:    c.AirDrag,
	}
}

// Clone 返回一份独立副本
func (c *WorldConfig) Clone() *WorldConfig {
	clone := *c
	return &clone
}

// SetGravity 设置重力，非有限数返回错误且不修改原值
func (c *WorldConfig) SetGravity(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("gravity: %w: %v", ErrInvalidValue, v)
	}
	c.Gravity = v
	return nil
}

// SetAirDrag 设置空气阻力，必须在 (0, 1] 内
func (c *WorldConfig) SetAirDrag(v float64) error {
	if err := checkDrag(v); err != nil {
		return fmt.Errorf("airDrag: %w", err)
	}
	c.AirDrag = v
	return nil
}

// SetWind 设置风力，非有限数返回错误且不修改原值
func (c *WorldConfig) SetWind(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("wind: %w: %v", ErrInvalidValue, v)
	}
	c.Wind = v
	return nil
}

// AdjustWind 风力增减
func (c *WorldConfig) AdjustWind(delta float64) {
	if isFinite(delta) {
		c.Wind += delta
	}
}

// Set 按名称设置参数，值为文本形式（命令行 -set 或调试控制台输入）
//
// 支持的参数: gravity, airDrag, wind, projectileSpeed, autoFireRate
// 文本不是数字时返回 ErrNotNumeric，原值保持不变。
func (c *WorldConfig) Set(name, raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", name, raw, ErrNotNumeric)
	}

	switch name {
	case "gravity":
		return c.SetGravity(v)
	case "airDrag", "drag":
		return c.SetAirDrag(v)
	case "wind":
		return c.SetWind(v)
	case "projectileSpeed", "speed":
		if !isFinite(v) || v <= 0 {
			return fmt.Errorf("projectileSpeed: %w: %v", ErrInvalidValue, v)
		}
		c.ProjectileSpeed = v
		return nil
	case "autoFireRate":
		if !isFinite(v) || v <= 0 {
			return fmt.Errorf("autoFireRate: %w: %v", ErrInvalidValue, v)
		}
		c.AutoFireRate = v
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownParam)
}

func checkDrag(v float64) error {
	if !isFinite(v) || v <= 0 || v > 1 {
		return fmt.Errorf("%w: %v (must be in (0, 1])", ErrInvalidValue, v)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
