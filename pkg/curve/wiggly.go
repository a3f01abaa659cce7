// Package curve 生成抖动的折线（火焰尾迹）
//
// 算法是递归中点位移：每一轮把每条线段的中点沿法线方向随机偏移，
// 偏移幅度按 0.6^level 衰减，越细的层级抖动越小，形成近似分形的火焰湍流。
package curve

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/decker502/firesim/internal/random"
)

const (
	// LevelDecay 每一层细分的抖动幅度衰减系数
	LevelDecay = 0.6
	// GaussSamples 每次位移使用的均匀样本数
	GaussSamples = 6
	// MaxLevels 细分轮数上限，超过时按上限处理（最多 4097 个点）
	MaxLevels = 12
	// perpEpsilon 防止退化线段（长度接近 0）归一化时除零
	perpEpsilon = 1e-6
)

// Wiggly 构建从 a 到 b 的抖动折线
//
// 参数:
//   - a, b: 起点和终点，输出的首尾点与它们完全相等
//   - std: 抖动幅度
//   - levels: 细分轮数，输出点数为 2^levels + 1；levels <= 0 时返回 [a, b]，
//     大于 MaxLevels 时按 MaxLevels 处理
//   - rng: 随机源，相同种子和输入产生相同输出
//
// 返回:
//   - []cp.Vector: 有序点列
func Wiggly(a, b cp.Vector, std float64, levels int, rng *random.Source) []cp.Vector {
	pts := []cp.Vector{a, b}
	if levels <= 0 {
		return pts
	}
	levels = min(levels, MaxLevels)

	for level := 0; level < levels; level++ {
		next := make([]cp.Vector, 0, len(pts)*2-1)
		factor := std * math.Pow(LevelDecay, float64(level))

		for i := 0; i < len(pts)-1; i++ {
			p1, p2 := pts[i], pts[i+1]
			mid := p1.Lerp(p2, 0.5)

			// 线段的单位法线
			perp := p2.Sub(p1).Perp()
			perp = perp.Mult(1 / (perp.Length() + perpEpsilon))

			offset := rng.Jitter(factor, GaussSamples)
			next = append(next, p1, mid.Add(perp.Mult(offset)))
		}
		next = append(next, pts[len(pts)-1])
		pts = next
	}

	return pts
}

// PointCount 返回 Wiggly 在给定细分轮数下输出的点数
func PointCount(levels int) int {
	if levels <= 0 {
		return 2
	}
	return 1<<uint(min(levels, MaxLevels)) + 1
}
