package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/firesim/pkg/game"
)

// Player 根据模拟统计播放音效
// 未初始化（或初始化失败）时所有方法都是空操作
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	prev        game.Stats
	initialized bool
}

// NewPlayer 创建播放器
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init 初始化扬声器
// 失败时返回错误，播放器保持静音，程序可继续运行
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Observe 比较统计变化并播放对应音效
func (p *Player) Observe(stats game.Stats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cues := CuesFromStats(p.prev, stats)
	p.prev = stats
	if !p.initialized || len(cues) == 0 {
		return
	}

	for _, c := range cues {
		s, err := NewCueStreamer(c, SampleRate)
		if err != nil {
			log.Printf("[Audio] %v", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close 停止所有音效并关闭扬声器
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
