package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/sim"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []sim.Event
	}{
		{
			name:    "space starts rapid fire",
			pressed: []ebiten.Key{ebiten.KeySpace},
			want:    []sim.Event{sim.FireHold(true)},
		},
		{
			name:     "space release stops rapid fire",
			released: []ebiten.Key{ebiten.KeySpace},
			want:     []sim.Event{sim.FireHold(false)},
		},
		{
			name:    "arrows nudge aim",
			pressed: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown},
			want: []sim.Event{
				sim.AimNudge(-config.AimNudgeStep),
				sim.AimNudge(config.AimNudgeStep),
			},
		},
		{
			name:    "brackets adjust wind",
			pressed: []ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyBracketLeft},
			want: []sim.Event{
				sim.WindAdjust(config.WindStep),
				sim.WindAdjust(-config.WindStep),
			},
		},
		{
			name:    "enter fires once",
			pressed: []ebiten.Key{ebiten.KeyEnter},
			want:    []sim.Event{sim.Fire()},
		},
		{
			name:    "debug toggle",
			pressed: []ebiten.Key{ebiten.KeyD},
			want:    []sim.Event{sim.ToggleDebug()},
		},
		{
			name:     "unbound keys are ignored",
			pressed:  []ebiten.Key{ebiten.KeyZ},
			released: []ebiten.Key{ebiten.KeyD},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKeys(tt.pressed, tt.released)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %v", len(got), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPointerEvents(t *testing.T) {
	var m InputMapper

	first := m.pointerEvents(100, 200, false)
	if len(first) != 1 || first[0] != sim.PointerMove(100, 200) {
		t.Errorf("first poll = %v, want one PointerMove", first)
	}

	if still := m.pointerEvents(100, 200, false); len(still) != 0 {
		t.Errorf("unmoved cursor produced %v", still)
	}

	click := m.pointerEvents(100, 200, true)
	if len(click) != 1 || click[0] != sim.Click(100, 200) {
		t.Errorf("click = %v, want one Click", click)
	}

	moveClick := m.pointerEvents(300, 50, true)
	if len(moveClick) != 2 || moveClick[0].Kind != sim.EventPointerMove || moveClick[1].Kind != sim.EventClick {
		t.Errorf("move+click = %v", moveClick)
	}
}
