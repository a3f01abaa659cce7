package term

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/game"
	"github.com/decker502/firesim/pkg/sim"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestCanvasCoordinates(t *testing.T) {
	c := NewCanvas(100, 40, 1000, 800)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{9.99, 19.99, 0, 0},
		{10, 20, 1, 1},
		{999, 799, 99, 39},
		{-0.5, -0.5, -1, -1},
		{-10, 0, -1, 0},
	}
	for _, tt := range tests {
		col, row := c.ToCell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}

	x, y := c.ToWorld(3, 2)
	if x != 35 || y != 50 {
		t.Errorf("ToWorld(3, 2) = (%v, %v), want (35, 50)", x, y)
	}
	if col, row := c.ToCell(x, y); col != 3 || row != 2 {
		t.Errorf("ToCell(ToWorld(3, 2)) = (%d, %d)", col, row)
	}
}

func TestCanvasSetAndText(t *testing.T) {
	c := NewCanvas(5, 2, 50, 20)

	c.Set(-1, 0, 'x', white)
	c.Set(5, 0, 'x', white)
	c.Set(0, 2, 'x', white)
	if got := c.At(-1, 0); got.Rune != 0 {
		t.Errorf("out-of-range At returned %q", got.Rune)
	}

	c.Text(3, 1, "HELLO", white)
	if c.At(3, 1).Rune != 'H' || c.At(4, 1).Rune != 'E' {
		t.Errorf("text not written: %q %q", c.At(3, 1).Rune, c.At(4, 1).Rune)
	}

	c.Resize(2, 2)
	if c.At(1, 1).Rune != 0 {
		t.Error("Resize should clear the canvas")
	}
	c.Resize(-3, 4)
	if c.Cols != 0 {
		t.Errorf("negative cols should clamp to 0, got %d", c.Cols)
	}
}

// count 统计网格中某个字符出现的次数
func count(c *Canvas, r rune) int {
	n := 0
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			if c.At(col, row).Rune == r {
				n++
			}
		}
	}
	return n
}

func rowText(c *Canvas, row int) string {
	var b strings.Builder
	for col := 0; col < c.Cols; col++ {
		r := c.At(col, row).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func testSnapshot() *game.Snapshot {
	return &game.Snapshot{
		Width:    1000,
		Height:   720,
		GroundY:  660,
		OriginX:  80,
		OriginY:  660,
		AimAngle: -math.Pi / 4,
		Target:   components.Target{X: 840, Y: 540, Radius: 36},
		Wind:     10,
	}
}

func TestRenderLayers(t *testing.T) {
	c := NewCanvas(100, 36, 1000, 720)
	s := testSnapshot()
	s.Particles = []game.ParticleView{
		{X: 500, Y: 300, Size: 4, Color: color.RGBA{R: 255, G: 100, B: 20, A: 255}, LifeRatio: 1},
		{X: 600, Y: 300, Size: 2, Color: color.RGBA{R: 255, G: 100, B: 20, A: 255}, LifeRatio: 0.2},
	}
	s.Projectiles = []game.ProjectileView{{X: 300, Y: 200, VX: 400, VY: 0}}
	s.Projectiles[0].Flame.Head.X, s.Projectiles[0].Flame.Head.Y = 300, 200
	s.Projectiles[0].Flame.Tail.X, s.Projectiles[0].Flame.Tail.Y = 250, 200
	s.Projectiles[0].Flame.Length = 50

	Render(c, s, "HINT")

	if !strings.HasPrefix(rowText(c, 0), "HINT") {
		t.Errorf("hint row = %q", rowText(c, 0))
	}
	if !strings.HasPrefix(rowText(c, c.Rows-1), "WIND: 10.0 px/s") {
		t.Errorf("wind row = %q", rowText(c, c.Rows-1))
	}
	if count(c, runeGround) == 0 {
		t.Error("ground not drawn")
	}
	if count(c, runeTarget) == 0 || count(c, runeOutline) == 0 {
		t.Error("target fill or outline not drawn")
	}
	if c.At(50, 15).Rune != runeParticle || c.At(60, 15).Rune != runeEmber {
		t.Errorf("particles = %q %q", c.At(50, 15).Rune, c.At(60, 15).Rune)
	}
	if c.At(30, 10).Rune != runeShell {
		t.Errorf("projectile cell = %q", c.At(30, 10).Rune)
	}
	if count(c, runeFlame) == 0 {
		t.Error("flame not drawn")
	}
	if count(c, runeBarrel) == 0 || c.At(8, 33).Rune != runeBase {
		t.Errorf("cannon not drawn, base cell = %q", c.At(8, 33).Rune)
	}
	if strings.Contains(rowText(c, 1), "PROJECTILES") {
		t.Error("counts label should only show with debug on")
	}

	s.ShowDebug = true
	Render(c, s, "HINT")
	if !strings.HasSuffix(rowText(c, 1), s.CountsLabel()) {
		t.Errorf("debug row = %q", rowText(c, 1))
	}
}

func TestFade(t *testing.T) {
	clr := color.RGBA{R: 200, G: 100, B: 10, A: 255}
	if got := fade(clr, 1); got != clr {
		t.Errorf("fade(1) = %v, want %v", got, clr)
	}
	if got := fade(clr, 0); got.R != 60 || got.G != 30 || got.B != 3 {
		t.Errorf("fade(0) = %v", got)
	}
	if got := fade(clr, 5); got != clr {
		t.Errorf("fade should clamp ratio, got %v", got)
	}
}

func TestInputKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want []sim.EventKind
		quit bool
	}{
		{"escape", tcell.KeyEscape, 0, nil, true},
		{"q", tcell.KeyRune, 'q', nil, true},
		{"left", tcell.KeyLeft, 0, []sim.EventKind{sim.EventAimNudge}, false},
		{"down", tcell.KeyDown, 0, []sim.EventKind{sim.EventAimNudge}, false},
		{"enter", tcell.KeyEnter, 0, []sim.EventKind{sim.EventFire}, false},
		{"debug", tcell.KeyRune, 'D', []sim.EventKind{sim.EventToggleDebug}, false},
		{"wind", tcell.KeyRune, ']', []sim.EventKind{sim.EventWindAdjust}, false},
		{"reset", tcell.KeyRune, 'r', []sim.EventKind{sim.EventFireHold, sim.EventReset}, false},
		{"unbound rune", tcell.KeyRune, 'z', nil, false},
		{"unbound key", tcell.KeyTab, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput()
			events, quit := in.Key(tt.key, tt.r)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if len(events) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(events), len(tt.want))
			}
			for i, ev := range events {
				if ev.Kind != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, ev.Kind, tt.want[i])
				}
			}
		})
	}
}

func TestInputSpaceToggles(t *testing.T) {
	in := NewInput()
	for i, want := range []bool{true, false, true} {
		events, _ := in.Key(tcell.KeyRune, ' ')
		if len(events) != 1 || events[0].Kind != sim.EventFireHold || events[0].Down != want {
			t.Fatalf("press %d: events = %+v, want FireHold(%v)", i, events, want)
		}
	}
	if !in.Holding() {
		t.Error("expected holding after three presses")
	}

	in.Key(tcell.KeyRune, 'r')
	if in.Holding() {
		t.Error("reset should release rapid fire")
	}
}

func TestInputMouse(t *testing.T) {
	c := NewCanvas(100, 36, 1000, 720)
	in := NewInput()

	events := in.Mouse(c, 10, 5, tcell.ButtonNone)
	if len(events) != 1 || events[0].Kind != sim.EventPointerMove {
		t.Fatalf("first move = %+v", events)
	}
	if events[0].X != 105 || events[0].Y != 110 {
		t.Errorf("pointer at (%v, %v), want (105, 110)", events[0].X, events[0].Y)
	}

	if events := in.Mouse(c, 10, 5, tcell.ButtonNone); len(events) != 0 {
		t.Errorf("same cell should not emit, got %+v", events)
	}

	events = in.Mouse(c, 10, 5, tcell.Button1)
	if len(events) != 1 || events[0].Kind != sim.EventClick {
		t.Fatalf("press = %+v", events)
	}

	// 按住拖动只瞄准，不重复开火
	events = in.Mouse(c, 11, 5, tcell.Button1)
	if len(events) != 1 || events[0].Kind != sim.EventPointerMove {
		t.Errorf("drag = %+v", events)
	}
}
