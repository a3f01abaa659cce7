package curve

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/decker502/firesim/internal/random"
)

// 火焰尺寸参数（由速度推导）
const (
	flameLenBase  = 10.0
	flameLenMin   = 12.0
	flameLenMax   = 120.0
	flameStdBase  = 6.0
	flameStdMin   = 6.0
	flameStdMax   = 48.0
	flameSpeedMul = 0.03

	// FlameLevels 火焰每一层的细分轮数
	FlameLevels = 2
)

// FlameLayer 火焰的一层：抖动倍数、线宽、颜色
type FlameLayer struct {
	StdMult float64
	Width   float64
	Color   color.RGBA
}

// FlameLayers 从内到外：内层亮黄细线，中层橙色，外层更宽更红
var FlameLayers = []FlameLayer{
	{StdMult: 0.3, Width: 2.0, Color: color.RGBA{R: 0xFF, G: 0xF8, B: 0xB0, A: 0xFF}},
	{StdMult: 1.0, Width: 3.5, Color: color.RGBA{R: 0xFF, G: 0xB3, B: 0x47, A: 0xFF}},
	{StdMult: 1.6, Width: 5.5, Color: color.RGBA{R: 0xD9, G: 0x3F, B: 0x1A, A: 0xFF}},
}

// Flame 抛射体尾迹的几何参数
// Head 是抛射体位置，Tail 沿速度反方向延伸 Length
type Flame struct {
	Head   cp.Vector
	Tail   cp.Vector
	Length float64
	Std    float64
}

// NewFlame 根据抛射体位置和速度推导火焰参数
// 速度越快，火焰越长、抖动越剧烈
func NewFlame(x, y, vx, vy float64) Flame {
	speed := math.Hypot(vx, vy)
	length := clamp(flameLenBase+speed*flameSpeedMul, flameLenMin, flameLenMax)
	std := clamp(flameStdBase+speed*flameSpeedMul, flameStdMin, flameStdMax)

	vmag := speed + perpEpsilon
	head := cp.Vector{X: x, Y: y}
	tail := cp.Vector{X: x - vx/vmag*length, Y: y - vy/vmag*length}

	return Flame{Head: head, Tail: tail, Length: length, Std: std}
}

// Layers 为每个 FlameLayer 生成一条抖动折线，顺序与 FlameLayers 一致
func (f Flame) Layers(rng *random.Source) [][]cp.Vector {
	out := make([][]cp.Vector, len(FlameLayers))
	for i, layer := range FlameLayers {
		out[i] = Wiggly(f.Head, f.Tail, f.Std*layer.StdMult, FlameLevels, rng)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
