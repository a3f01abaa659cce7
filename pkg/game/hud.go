package game

import (
	"fmt"
	"math"
)

// HUD 文本格式
const (
	hintFormat   = "Aim with mouse or arrow keys. Click or Space to fire. Hold Space = rapid fire. Wind [ / ]  Toggle debug: D. FPS target: %d"
	windFormat   = "WIND: %.1f px/s"
	countsFormat = "PROJECTILES: %d    PARTICLES: %d"
)

// HintText 左上角的操作提示
func HintText(targetFPS int) string {
	return fmt.Sprintf(hintFormat, targetFPS)
}

// WindLabel 风力显示文本（左下角）
func (s *Snapshot) WindLabel() string {
	return fmt.Sprintf(windFormat, s.Wind)
}

// CountsLabel 实体数量显示文本（调试覆盖层，右上角）
func (s *Snapshot) CountsLabel() string {
	return fmt.Sprintf(countsFormat, len(s.Projectiles), len(s.Particles))
}

// DebugLines 调试覆盖层文本，ShowDebug 为 false 时返回 nil
// 第一行固定为 CountsLabel
func (s *Snapshot) DebugLines() []string {
	if !s.ShowDebug {
		return nil
	}
	st := s.Stats
	return []string{
		s.CountsLabel(),
		fmt.Sprintf("FRAME: %d  TIME: %.2fs", s.Frame, s.Time),
		fmt.Sprintf("AIM: %.1f deg  FIRE: %v", s.AimAngle*180/math.Pi, s.HoldingFire),
		fmt.Sprintf("TARGET: (%.0f, %.0f) r=%.0f", s.Target.X, s.Target.Y, s.Target.Radius),
		fmt.Sprintf("FIRED: %d  REJECTED: %d", st.ProjectilesFired, st.ProjectilesRejected),
		fmt.Sprintf("HITS: %d  BOUNCES: %d  SETTLES: %d  LOST: %d", st.Hits, st.Bounces, st.Settles, st.OutOfBounds),
		fmt.Sprintf("SPARKS: %d  DROPPED: %d  EXPIRED: %d  CULLED: %d",
			st.ParticlesSpawned, st.ParticlesDropped, st.ParticlesExpired, st.ParticlesCulled),
	}
}
