// Package random 提供可设定种子的随机数源
//
// 粒子生成、火焰曲线抖动和目标偏移都从同一个 Source 取值，
// 固定种子时整个模拟过程可以完全复现（测试依赖这一点）。
package random

import (
	"math"
	"math/rand"
	"time"
)

// DefaultGaussSamples 近似正态分布时默认叠加的均匀分布样本数
const DefaultGaussSamples = 8

// Source 是 math/rand 的包装，所有随机取值都经过它
// 注意：Source 不是并发安全的，与拥有它的模拟循环处于同一个 goroutine
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New 创建随机源
// seed 为 0 时使用当前时间作为种子
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed 返回创建时实际使用的种子
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 返回 [0.0, 1.0) 的均匀随机数
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Range 返回 [min, max) 的均匀随机数
// min >= max 时直接返回 min
func (s *Source) Range(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// IntRange 返回 [lo, hi] 闭区间内的随机整数
func (s *Source) IntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Angle 返回 [0, 2π) 的随机角度（弧度）
func (s *Source) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// GaussLike 返回 n 个 [0,1) 均匀样本的平均值（Irwin–Hall 近似）
//
// 结果落在 [0,1) 内，均值为 0.5，形状近似钟形。
// n <= 0 时使用 DefaultGaussSamples。
func (s *Source) GaussLike(n int) float64 {
	if n <= 0 {
		n = DefaultGaussSamples
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.rng.Float64()
	}
	return sum / float64(n)
}

// Jitter 返回以 0 为中心、幅度为 amplitude 的近似正态扰动
// 取值范围 (-amplitude, amplitude)
func (s *Source) Jitter(amplitude float64, n int) float64 {
	return (s.GaussLike(n) - 0.5) * 2 * amplitude
}
