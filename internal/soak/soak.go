// Package soak 无界面长时间运行模拟，检查容量约束并汇总统计
package soak

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/decker502/firesim/pkg/game"
	"github.com/decker502/firesim/pkg/sim"
)

// Options 运行参数
type Options struct {
	// Ticks 运行的 tick 数
	Ticks int
	// DT 固定步长（秒），超过单帧上限时会被截断
	DT float64
	// HoldFire 全程按住开火
	HoldFire bool
	// ClickEvery 每隔多少 tick 朝目标点击一次，0 表示不点击
	ClickEvery int
}

// DefaultOptions 60 秒、60 FPS、按住开火
func DefaultOptions() Options {
	return Options{Ticks: 3600, DT: 1.0 / 60.0, HoldFire: true}
}

// Report 运行结果
type Report struct {
	Seed    int64   `yaml:"seed"`
	Ticks   uint64  `yaml:"ticks"`
	SimTime float64 `yaml:"simTime"`

	MaxProjectiles  int `yaml:"maxProjectiles"`
	MaxParticles    int `yaml:"maxParticles"`
	PeakProjectiles int `yaml:"peakProjectiles"`
	PeakParticles   int `yaml:"peakParticles"`

	// Violations 实体数超过容量上限的 tick 数，正常情况下为 0
	Violations int `yaml:"violations"`

	Stats game.Stats `yaml:"stats"`
}

// Run 按 opts 驱动 s，返回汇总报告
func Run(s *sim.Simulation, opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, errors.New("ticks must be > 0")
	}
	if opts.DT <= 0 {
		return Report{}, errors.New("dt must be > 0")
	}

	w := s.World()
	if opts.HoldFire {
		if err := s.Apply(sim.FireHold(true)); err != nil {
			return Report{}, err
		}
	}

	r := Report{Seed: s.Seed()}
	for i := 0; i < opts.Ticks; i++ {
		if opts.ClickEvery > 0 && i%opts.ClickEvery == 0 {
			if err := s.Apply(sim.Click(w.Target.X, w.Target.Y)); err != nil {
				return Report{}, err
			}
		}
		s.Tick(opts.DT)

		np, nq := w.Projectiles.Len(), w.Particles.Len()
		if np > w.Config.MaxProjectiles || nq > w.Config.MaxParticles {
			r.Violations++
		}
		r.PeakProjectiles = max(r.PeakProjectiles, np)
		r.PeakParticles = max(r.PeakParticles, nq)
	}

	r.Ticks = w.Frame
	r.SimTime = w.Time
	r.MaxProjectiles = w.Config.MaxProjectiles
	r.MaxParticles = w.Config.MaxParticles
	r.Stats = w.Stats

	log.Printf("[Soak] %d ticks, peak %d/%d projectiles, %d/%d particles",
		r.Ticks, r.PeakProjectiles, r.MaxProjectiles, r.PeakParticles, r.MaxParticles)
	return r, nil
}

// Write 按 format（text 或 yaml）输出报告
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "", "text":
		st := r.Stats
		_, err := fmt.Fprintf(w,
			"seed %d: %d ticks, %.2fs simulated\n"+
				"projectiles: peak %d/%d, fired %d, rejected %d\n"+
				"  hits %d, bounces %d, settles %d, out of bounds %d\n"+
				"particles: peak %d/%d, spawned %d, dropped %d, expired %d, culled %d\n"+
				"capacity violations: %d\n",
			r.Seed, r.Ticks, r.SimTime,
			r.PeakProjectiles, r.MaxProjectiles, st.ProjectilesFired, st.ProjectilesRejected,
			st.Hits, st.Bounces, st.Settles, st.OutOfBounds,
			r.PeakParticles, r.MaxParticles, st.ParticlesSpawned, st.ParticlesDropped,
			st.ParticlesExpired, st.ParticlesCulled,
			r.Violations)
		return err
	}
	return fmt.Errorf("unknown report format %q (want text or yaml)", format)
}
