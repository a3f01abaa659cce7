package term

import (
	"image/color"
	"math"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/curve"
	"github.com/decker502/firesim/pkg/game"
)

// 终端配色，与桌面端一致；地面在终端上调亮一些
var (
	groundColor  = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xFF}
	targetColor  = color.RGBA{R: 0x7a, G: 0x0f, B: 0x0f, A: 0xFF}
	outlineColor = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	shellColor   = color.RGBA{R: 0xFF, G: 0x6F, B: 0x3C, A: 0xFF}
	barrelColor  = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	baseColor    = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
	textColor    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// 字符
const (
	runeGround   = '▀'
	runeTarget   = '░'
	runeOutline  = '▓'
	runeShell    = '●'
	runeFlame    = '~'
	runeBarrel   = '='
	runeBase     = '◆'
	runeParticle = '*'
	runeEmber    = '.'
)

// Render 按桌面端相同的层次把快照画到 c 上：
// 地面、目标、粒子、火焰和抛射体、炮台、HUD
func Render(c *Canvas, s *game.Snapshot, hint string) {
	c.Clear()

	_, groundRow := c.ToCell(0, s.GroundY)
	for row := groundRow; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			c.Set(col, row, runeGround, groundColor)
		}
	}

	drawTarget(c, s)

	for _, p := range s.Particles {
		r := rune(runeParticle)
		if p.LifeRatio < 0.5 {
			r = runeEmber
		}
		c.Plot(p.X, p.Y, r, fade(p.Color, p.LifeRatio))
	}

	for _, p := range s.Projectiles {
		drawFlame(c, p.Flame)
		c.Plot(p.X, p.Y, runeShell, shellColor)
	}

	// 炮管：沿瞄准方向每隔一格取一个点
	dx, dy := s.AimDirection()
	step := c.width / math.Max(1, float64(c.Cols))
	for d := step; d <= config.BarrelLength; d += step {
		c.Plot(s.OriginX+dx*d, s.OriginY+dy*d, runeBarrel, barrelColor)
	}
	c.Plot(s.OriginX, s.OriginY, runeBase, baseColor)

	c.Text(0, 0, hint, textColor)
	c.Text(0, c.Rows-1, s.WindLabel(), textColor)
	for i, line := range s.DebugLines() {
		c.Text(c.Cols-len(line), 1+i, line, textColor)
	}
}

// drawTarget 格子中心落在圆内的填充，落在边缘一圈的画轮廓
func drawTarget(c *Canvas, s *game.Snapshot) {
	t := s.Target
	minCol, minRow := c.ToCell(t.X-t.Radius, t.Y-t.Radius)
	maxCol, maxRow := c.ToCell(t.X+t.Radius, t.Y+t.Radius)

	cellW := c.width / math.Max(1, float64(c.Cols))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			x, y := c.ToWorld(col, row)
			d := math.Hypot(x-t.X, y-t.Y)
			switch {
			case d > t.Radius:
			case d > t.Radius-cellW:
				c.Set(col, row, runeOutline, outlineColor)
			default:
				c.Set(col, row, runeTarget, targetColor)
			}
		}
	}

	label := "TARGET"
	col, row := c.ToCell(t.X, t.Y-t.Radius)
	c.Text(col-len(label)/2, row-1, label, textColor)
}

// drawFlame 沿 Head→Tail 采样，从头到尾依次用内、中、外层颜色
func drawFlame(c *Canvas, f curve.Flame) {
	step := c.width / math.Max(1, float64(c.Cols))
	n := int(f.Length / step)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		layer := curve.FlameLayers[int(t*float64(len(curve.FlameLayers)))]
		x := f.Head.X + (f.Tail.X-f.Head.X)*t
		y := f.Head.Y + (f.Tail.Y-f.Head.Y)*t
		c.Plot(x, y, runeFlame, layer.Color)
	}
}

// fade 按剩余寿命压暗颜色，最暗保留 30%
func fade(clr color.RGBA, ratio float64) color.RGBA {
	k := 0.3 + 0.7*math.Max(0, math.Min(1, ratio))
	return color.RGBA{
		R: uint8(float64(clr.R) * k),
		G: uint8(float64(clr.G) * k),
		B: uint8(float64(clr.B) * k),
		A: clr.A,
	}
}
