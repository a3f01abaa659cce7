package sim

import (
	"context"
	"errors"
	"time"

	"github.com/decker502/firesim/pkg/game"
)

// FrameFunc 每个 tick 结束后调用，snap 在下一次调用前保持有效
// 跨 goroutine 保存时需要 Clone
type FrameFunc func(snap *game.Snapshot)

// Run 以 fps 的节奏驱动模拟，直到 ctx 取消
//
// 事件在 tick 之间应用，渲染回调在 tick 完成后调用，两者不会与 tick 交错。
// events 可以为 nil。返回 ctx.Err()。
func Run(ctx context.Context, s *Simulation, fps int, events <-chan Event, onFrame FrameFunc) error {
	if fps <= 0 {
		return errors.New("fps must be > 0")
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var snap game.Snapshot
	s.Step(time.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			// 参数错误已在 Apply 中记录，原值保持不变
			_ = s.Apply(ev)

		case now := <-ticker.C:
			s.Step(now)
			if onFrame != nil {
				s.SnapshotInto(&snap)
				onFrame(&snap)
			}
		}
	}
}
