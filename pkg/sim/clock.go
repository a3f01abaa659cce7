package sim

import (
	"math"
	"time"

	"github.com/decker502/firesim/pkg/config"
)

// ClampDT 把时间步长限制在 [0, MaxDeltaTime]
// 卡顿或暂停后的大步长会被截断，NaN 视为 0
func ClampDT(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}

// Clock 记录上一次 tick 的墙钟时间，计算经过钳制的 dt
type Clock struct {
	last    time.Time
	started bool
}

// Advance 返回自上一次调用以来经过的秒数（已钳制）
// 第一次调用返回 0
func (c *Clock) Advance(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDT(dt)
}

// Reset 下一次 Advance 重新开始计时
func (c *Clock) Reset() {
	c.started = false
}
