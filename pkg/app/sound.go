package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	cues "github.com/decker502/firesim/internal/audio"
	"github.com/decker502/firesim/pkg/game"
)

// SoundManager 桌面端音效管理器
// 职责：
//   - 启动时把所有音效合成为 PCM 并缓存播放器
//   - 比较每帧统计，有新事件时播放对应音效
type SoundManager struct {
	players map[cues.Cue]*audio.Player
	volume  float64
	prev    game.Stats
}

// NewSoundManager 创建音效管理器
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
//
// 返回：
//   - *SoundManager: 音效管理器实例
//   - error: 合成失败时返回错误
func NewSoundManager(volume float64) (*SoundManager, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(cues.SampleRate))
	}

	sm := &SoundManager{
		players: make(map[cues.Cue]*audio.Player),
		volume:  volume,
	}
	for _, c := range []cues.Cue{cues.CueFire, cues.CueBounce, cues.CueSettle, cues.CueHit} {
		pcm, err := cues.PCM(c, cues.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %v: %w", c, err)
		}
		sm.players[c] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("[SoundManager] %d cues ready (volume: %.2f)", len(sm.players), volume)
	return sm, nil
}

// Observe 比较统计变化并播放对应音效
func (sm *SoundManager) Observe(stats game.Stats) {
	for _, c := range cues.CuesFromStats(sm.prev, stats) {
		sm.play(c)
	}
	sm.prev = stats
}

func (sm *SoundManager) play(c cues.Cue) {
	player := sm.players[c]
	if player == nil {
		return
	}
	player.SetVolume(sm.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[SoundManager] Warning: Failed to rewind %v: %v", c, err)
	}
	player.Play()
}
