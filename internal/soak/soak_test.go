package soak

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/sim"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRunDefaultConfig(t *testing.T) {
	s := sim.New(config.DefaultWorldConfig(), 7)
	opts := DefaultOptions()
	opts.Ticks = 600

	r, err := Run(s, opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if r.Ticks != 600 {
		t.Errorf("Ticks = %d, want 600", r.Ticks)
	}
	if r.Violations != 0 {
		t.Errorf("Violations = %d, want 0", r.Violations)
	}
	if r.PeakProjectiles > r.MaxProjectiles || r.PeakParticles > r.MaxParticles {
		t.Errorf("peaks %d/%d exceed caps %d/%d", r.PeakProjectiles, r.PeakParticles, r.MaxProjectiles, r.MaxParticles)
	}

	// 10 发/秒，10 秒
	shots := r.Stats.ProjectilesFired + r.Stats.ProjectilesRejected
	if shots < 95 || shots > 100 {
		t.Errorf("shots = %d, want about 100", shots)
	}
	if r.Stats.ParticlesSpawned == 0 {
		t.Error("expected some bursts during the run")
	}
}

func TestRunSaturatesCapacity(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	cfg.MaxProjectiles = 5
	cfg.MaxParticles = 50
	cfg.AutoFireRate = 100

	s := sim.New(cfg, 3)
	opts := DefaultOptions()
	opts.Ticks = 300
	opts.ClickEvery = 10

	r, err := Run(s, opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.Violations != 0 {
		t.Errorf("Violations = %d, want 0", r.Violations)
	}
	if r.PeakProjectiles != 5 {
		t.Errorf("PeakProjectiles = %d, want 5", r.PeakProjectiles)
	}
	if r.Stats.ProjectilesRejected == 0 {
		t.Error("expected rejected shots at saturation")
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Ticks = 240
	opts.ClickEvery = 30

	a, err := Run(sim.New(config.DefaultWorldConfig(), 42), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(sim.New(config.DefaultWorldConfig(), 42), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed produced different reports:\n%+v\n%+v", a, b)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	s := sim.New(config.DefaultWorldConfig(), 1)
	for _, opts := range []Options{{Ticks: 0, DT: 0.01}, {Ticks: 10, DT: 0}} {
		if _, err := Run(s, opts); err == nil {
			t.Errorf("Run(%+v) should fail", opts)
		}
	}
}

func TestReportWrite(t *testing.T) {
	r := Report{Seed: 9, Ticks: 10, MaxProjectiles: 40, MaxParticles: 1500}
	r.Stats.Hits = 2

	var text bytes.Buffer
	if err := r.Write(&text, "text"); err != nil {
		t.Fatalf("Write(text) error: %v", err)
	}
	if !strings.Contains(text.String(), "hits 2") || !strings.Contains(text.String(), "capacity violations: 0") {
		t.Errorf("unexpected text report:\n%s", text.String())
	}

	var out bytes.Buffer
	if err := r.Write(&out, "yaml"); err != nil {
		t.Fatalf("Write(yaml) error: %v", err)
	}
	var parsed Report
	if err := yaml.Unmarshal(out.Bytes(), &parsed); err != nil {
		t.Fatalf("yaml report does not parse: %v", err)
	}
	if parsed != r {
		t.Errorf("yaml report = %+v, want %+v", parsed, r)
	}

	if err := r.Write(io.Discard, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
