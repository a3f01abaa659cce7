package game

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/decker502/firesim/pkg/components"
	"github.com/decker502/firesim/pkg/config"
)

func TestNewWorld(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	w := NewWorld(cfg)

	if w.Config != cfg {
		t.Error("world should hold the shared config pointer")
	}
	if w.OriginX != 80 || w.OriginY != 660 {
		t.Errorf("origin = (%v, %v), want (80, 660)", w.OriginX, w.OriginY)
	}
	if w.Target.X != 840 || w.Target.Y != 540 || w.Target.Radius != 36 {
		t.Errorf("target = %+v, want (840, 540) r=36", w.Target)
	}
	if w.AimAngle != InitialAimAngle {
		t.Errorf("AimAngle = %v, want %v", w.AimAngle, InitialAimAngle)
	}
	if w.Projectiles.Cap() != 40 || w.Particles.Cap() != 800 {
		t.Errorf("capacities = %d/%d, want 40/800", w.Projectiles.Cap(), w.Particles.Cap())
	}
}

func TestAimAt(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"right", 180, 660, 0},
		{"straight up", 80, 560, -math.Pi / 2},
		{"up-left", -20, 560, -3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.AimAt(tt.x, tt.y)
			if math.Abs(w.AimAngle-tt.want) > 1e-12 {
				t.Errorf("AimAngle = %v, want %v", w.AimAngle, tt.want)
			}
		})
	}

	// 指向炮口本身时角度不变
	before := w.AimAngle
	w.AimAt(80, 660)
	if w.AimAngle != before {
		t.Errorf("AimAt(origin) changed angle to %v", w.AimAngle)
	}
}

func TestNudgeAim(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())
	w.NudgeAim(config.AimNudgeStep)
	w.NudgeAim(math.NaN())

	want := InitialAimAngle + config.AimNudgeStep
	if math.Abs(w.AimAngle-want) > 1e-12 {
		t.Errorf("AimAngle = %v, want %v", w.AimAngle, want)
	}

	dx, dy := w.Snapshot().AimDirection()
	if math.Abs(math.Hypot(dx, dy)-1) > 1e-12 {
		t.Errorf("AimDirection is not unit length: (%v, %v)", dx, dy)
	}
}

func TestSyncCapacity(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	w := NewWorld(cfg)
	for i := 0; i < 10; i++ {
		w.Projectiles.Add(components.NewProjectile(0, 0, 0, 0))
	}

	cfg.MaxProjectiles = 4
	cfg.MaxParticles = 100
	w.SyncCapacity()

	if w.Projectiles.Len() != 4 || w.Projectiles.Cap() != 4 {
		t.Errorf("projectiles len/cap = %d/%d, want 4/4", w.Projectiles.Len(), w.Projectiles.Cap())
	}
	if w.Particles.Cap() != 100 {
		t.Errorf("particle cap = %d, want 100", w.Particles.Cap())
	}
}

func TestReset(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())
	w.Projectiles.Add(components.NewProjectile(0, 0, 0, 0))
	w.Particles.Add(components.NewParticle(0, 0, 0, 0, 1, 2, color.RGBA{}))
	w.Stats.Hits = 3
	w.Target.X = 500
	w.HoldingFire = true
	w.Frame = 9

	w.Reset()

	if w.Projectiles.Len() != 0 || w.Particles.Len() != 0 {
		t.Error("Reset should clear entities")
	}
	if w.Stats != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", w.Stats)
	}
	if w.Target.X != 840 || w.HoldingFire || w.Frame != 0 {
		t.Errorf("Reset left state behind: target=%v fire=%v frame=%d", w.Target.X, w.HoldingFire, w.Frame)
	}
}

// TestSnapshotIsIndependent 快照与世界状态互不影响
func TestSnapshotIsIndependent(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())
	w.Projectiles.Add(components.NewProjectile(100, 200, 1200, 0))
	w.Particles.Add(components.NewParticle(5, 6, 0, 0, 1, 4, color.RGBA{R: 250, G: 100, B: 20, A: 255}))

	s := w.Snapshot()
	if len(s.Projectiles) != 1 || len(s.Particles) != 1 {
		t.Fatalf("snapshot sizes = %d/%d, want 1/1", len(s.Projectiles), len(s.Particles))
	}

	pv := s.Projectiles[0]
	if pv.X != 100 || math.Abs(pv.Flame.Length-46) > 1e-9 {
		t.Errorf("projectile view = %+v", pv)
	}
	if s.Particles[0].LifeRatio != 1 || s.Particles[0].Size != 4 {
		t.Errorf("particle view = %+v", s.Particles[0])
	}

	w.Projectiles.Items()[0].X = 999
	w.Target.X = 1
	if s.Projectiles[0].X != 100 || s.Target.X != 840 {
		t.Error("snapshot changed when world was mutated")
	}

	c := s.Clone()
	c.Particles[0].X = -1
	if s.Particles[0].X != 5 {
		t.Error("Clone shares particle slice with the original")
	}
}

func TestSnapshotIntoReusesBuffers(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())
	for i := 0; i < 3; i++ {
		w.Particles.Add(components.NewParticle(float64(i), 0, 0, 0, 1, 2, color.RGBA{}))
	}

	var s Snapshot
	w.SnapshotInto(&s)
	w.Particles.Clear()
	w.SnapshotInto(&s)

	if len(s.Particles) != 0 {
		t.Errorf("stale particles in reused snapshot: %d", len(s.Particles))
	}
	if cap(s.Particles) < 3 {
		t.Errorf("buffer was not reused, cap = %d", cap(s.Particles))
	}
}

func TestHUDText(t *testing.T) {
	w := NewWorld(config.DefaultWorldConfig())
	w.Config.Wind = -20
	w.Projectiles.Add(components.NewProjectile(0, 0, 0, 0))

	s := w.Snapshot()
	if got := s.WindLabel(); got != "WIND: -20.0 px/s" {
		t.Errorf("wind label = %q", got)
	}
	if got := s.CountsLabel(); got != "PROJECTILES: 1    PARTICLES: 0" {
		t.Errorf("counts label = %q", got)
	}
	if hint := HintText(60); !strings.HasSuffix(hint, "FPS target: 60") {
		t.Errorf("hint = %q", hint)
	}

	if s.DebugLines() != nil {
		t.Error("debug lines should be hidden by default")
	}
	s.ShowDebug = true
	debug := s.DebugLines()
	if len(debug) < 2 || debug[0] != s.CountsLabel() || !strings.HasPrefix(debug[1], "FRAME:") {
		t.Errorf("unexpected debug lines %v", debug)
	}
}
