package components

import "math"

// Target 圆形目标
// 每次被命中时随机偏移一小段距离，永不销毁
type Target struct {
	X, Y   float64 // 圆心（像素）
	Radius float64 // 半径（像素）
}

// Contains 点 (x, y) 是否在目标圆内（含边界）
// 使用平方距离比较，避免开方
func (t *Target) Contains(x, y float64) bool {
	dx := x - t.X
	dy := y - t.Y
	return dx*dx+dy*dy <= t.Radius*t.Radius
}

// Nudge 平移目标，并把圆限制在 [0, width] × [0, groundY] 内
func (t *Target) Nudge(dx, dy, width, groundY float64) {
	t.X = clampRange(t.X+dx, t.Radius, width-t.Radius)
	t.Y = clampRange(t.Y+dy, t.Radius, groundY-t.Radius)
}

func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
