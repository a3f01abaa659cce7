package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		body   Body
		dt     float64
		env    Environment
		wantVX float64
		wantVY float64
		wantX  float64
		wantY  float64
	}{
		{
			name:   "gravity only, no drag",
			body:   Body{X: 0, Y: 0, VX: 0, VY: 0},
			dt:     0.5,
			env:    Environment{Gravity: 700, Drag: 1},
			wantVX: 0,
			wantVY: 350,
			wantX:  0,
			wantY:  175,
		},
		{
			name:   "wind only, no drag",
			body:   Body{VX: 10},
			dt:     1,
			env:    Environment{Wind: 20, Drag: 1},
			wantVX: 30,
			wantX:  30,
		},
		{
			name: "drag at reference rate",
			body: Body{VX: 100, VY: -100},
			dt:   1.0 / 60.0,
			env:  Environment{Drag: 0.995},
			// 1/60 秒正好一个参考帧，保留 0.995
			wantVX: 99.5,
			wantVY: -99.5,
			wantX:  99.5 / 60.0,
			wantY:  -99.5 / 60.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			Integrate(&b, tt.dt, tt.env)

			if math.Abs(b.VX-tt.wantVX) > epsilon {
				t.Errorf("VX = %v, want %v", b.VX, tt.wantVX)
			}
			if math.Abs(b.VY-tt.wantVY) > epsilon {
				t.Errorf("VY = %v, want %v", b.VY, tt.wantVY)
			}
			if math.Abs(b.X-tt.wantX) > epsilon {
				t.Errorf("X = %v, want %v", b.X, tt.wantX)
			}
			if math.Abs(b.Y-tt.wantY) > epsilon {
				t.Errorf("Y = %v, want %v", b.Y, tt.wantY)
			}
		})
	}
}

// TestIntegrateDragApproximatelyFrameRateIndependent 两个 1/120 步与一个 1/60 步的阻力效果接近
func TestIntegrateDragApproximatelyFrameRateIndependent(t *testing.T) {
	env := Environment{Drag: 0.9}

	one := Body{VX: 1000}
	Integrate(&one, 1.0/60.0, env)

	two := Body{VX: 1000}
	Integrate(&two, 1.0/120.0, env)
	Integrate(&two, 1.0/120.0, env)

	if diff := math.Abs(one.VX - two.VX); diff > 5 {
		t.Errorf("drag differs too much across step sizes: %v vs %v", one.VX, two.VX)
	}
}

func TestIntegrateLight(t *testing.T) {
	b := Body{X: 10, Y: 20, VX: 1, VY: 2}
	env := Environment{Gravity: 700, Wind: 100, Drag: 0.5}

	IntegrateLight(&b, 0.1, env)

	// vy += 700*0.1*0.1 = 7, vx += 100*0.1*0.3 = 3, 不受阻力影响
	if math.Abs(b.VY-9) > epsilon {
		t.Errorf("VY = %v, want 9", b.VY)
	}
	if math.Abs(b.VX-4) > epsilon {
		t.Errorf("VX = %v, want 4", b.VX)
	}
	if math.Abs(b.X-10.4) > epsilon {
		t.Errorf("X = %v, want 10.4", b.X)
	}
	if math.Abs(b.Y-20.9) > epsilon {
		t.Errorf("Y = %v, want 20.9", b.Y)
	}
}

func TestDragFactor(t *testing.T) {
	if got := DragFactor(1, 0.5); got != 1 {
		t.Errorf("DragFactor(1, 0.5) = %v, want 1", got)
	}
	if got := DragFactor(0.995, 1.0/60.0); math.Abs(got-0.995) > epsilon {
		t.Errorf("DragFactor(0.995, 1/60) = %v, want 0.995", got)
	}
}

func TestSpeed(t *testing.T) {
	if got := (Body{VX: 3, VY: 4}).Speed(); got != 5 {
		t.Errorf("Speed() = %v, want 5", got)
	}
}
