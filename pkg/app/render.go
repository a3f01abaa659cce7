package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"

	"github.com/decker502/firesim/internal/random"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/curve"
	"github.com/decker502/firesim/pkg/game"
)

// 调色板
var (
	colorBackground = color.RGBA{A: 0xFF}
	colorGround     = color.RGBA{R: 0x1B, G: 0x1B, B: 0x1B, A: 0xFF}
	colorTargetFill = color.RGBA{R: 0x7A, G: 0x0F, B: 0x0F, A: 0xFF}
	colorTargetLine = color.RGBA{R: 0xFF, A: 0xFF}
	colorShellOuter = color.RGBA{R: 0xFF, G: 0x6F, B: 0x3C, A: 0xFF}
	colorShellCore  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorBarrel     = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	colorCannonBase = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
)

const (
	// DebugPrint 字体为 6x16
	debugCharWidth  = 6
	debugLineHeight = 16
	hudMargin       = 12

	targetStrokeWidth = 2
	barrelWidth       = 10
	cannonBaseRadius  = 10
	shellOuterRadius  = 8
	shellCoreRadius   = 4
)

// Renderer 把快照绘制到 ebiten 画布
//
// 火焰抖动使用独立的随机源，绘制不会影响模拟的随机序列。
type Renderer struct {
	rng       *random.Source
	targetFPS int
}

// NewRenderer 创建渲染器
func NewRenderer(seed int64, targetFPS int) *Renderer {
	return &Renderer{
		rng:       random.New(seed),
		targetFPS: targetFPS,
	}
}

// Draw 绘制一帧
// 顺序：背景、地面、目标、粒子、抛射体与火焰、炮台、HUD
func (r *Renderer) Draw(screen *ebiten.Image, s *game.Snapshot) {
	screen.Fill(colorBackground)

	w, h := float32(s.Width), float32(s.Height)
	ground := float32(s.GroundY)
	vector.DrawFilledRect(screen, 0, ground, w, h-ground, colorGround, false)

	r.drawTarget(screen, s)
	r.drawParticles(screen, s)
	r.drawProjectiles(screen, s)
	r.drawCannon(screen, s)
	r.drawHUD(screen, s)
}

func (r *Renderer) drawTarget(screen *ebiten.Image, s *game.Snapshot) {
	t := s.Target
	x, y, rad := float32(t.X), float32(t.Y), float32(t.Radius)
	vector.DrawFilledCircle(screen, x, y, rad, colorTargetFill, true)
	vector.StrokeCircle(screen, x, y, rad, targetStrokeWidth, colorTargetLine, true)

	const label = "TARGET"
	ebitenutil.DebugPrintAt(screen, label, int(t.X)-len(label)*debugCharWidth/2, int(t.Y)-debugLineHeight/2)
}

// drawParticles 按插入顺序绘制（先生成的在下面）
func (r *Renderer) drawParticles(screen *ebiten.Image, s *game.Snapshot) {
	for _, p := range s.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.Color, true)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, s *game.Snapshot) {
	for _, p := range s.Projectiles {
		for i, pts := range p.Flame.Layers(r.rng) {
			layer := curve.FlameLayers[i]
			strokePolyline(screen, pts, float32(layer.Width), layer.Color)
		}

		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(screen, x, y, shellOuterRadius, colorShellOuter, true)
		vector.DrawFilledCircle(screen, x, y, shellCoreRadius, colorShellCore, true)
	}
}

func (r *Renderer) drawCannon(screen *ebiten.Image, s *game.Snapshot) {
	ox, oy := s.OriginX, s.OriginY
	dx, dy := s.AimDirection()
	bx := ox + dx*config.BarrelLength
	by := oy + dy*config.BarrelLength

	vector.StrokeLine(screen, float32(ox), float32(oy), float32(bx), float32(by), barrelWidth, colorBarrel, true)
	vector.DrawFilledCircle(screen, float32(ox), float32(oy), cannonBaseRadius, colorCannonBase, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, game.HintText(r.targetFPS), hudMargin, hudMargin)
	ebitenutil.DebugPrintAt(screen, s.WindLabel(), hudMargin, s.Height-hudMargin*2)

	// 调试覆盖层右对齐
	for i, line := range s.DebugLines() {
		x := s.Width - hudMargin - len(line)*debugCharWidth
		ebitenutil.DebugPrintAt(screen, line, x, hudMargin+debugLineHeight*(i+1))
	}
}

// strokePolyline 依次连接相邻点
func strokePolyline(screen *ebiten.Image, pts []cp.Vector, width float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}
