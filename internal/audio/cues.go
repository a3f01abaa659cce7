// Package audio 为终端前端合成简单的事件音效（开火、反弹、落地、命中）
//
// 所有音效都是即时合成的正弦波，不依赖音频文件。
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/decker502/firesim/pkg/game"
)

// SampleRate 输出采样率
const SampleRate = beep.SampleRate(44100)

// Cue 音效类型
type Cue int

const (
	CueFire Cue = iota
	CueBounce
	CueSettle
	CueHit
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueBounce:
		return "bounce"
	case CueSettle:
		return "settle"
	case CueHit:
		return "hit"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// tone 一个音效的参数
type tone struct {
	freqs    []float64 // 叠加的频率（Hz）
	duration time.Duration
	volume   float64 // 以 2 为底的音量，0 为原始音量
}

var tones = map[Cue]tone{
	CueFire:   {freqs: []float64{220}, duration: 40 * time.Millisecond, volume: -2},
	CueBounce: {freqs: []float64{1320}, duration: 25 * time.Millisecond, volume: -3},
	CueSettle: {freqs: []float64{110, 165}, duration: 120 * time.Millisecond, volume: -1},
	CueHit:    {freqs: []float64{880, 1320}, duration: 150 * time.Millisecond, volume: -1},
}

// Duration 音效时长
func Duration(c Cue) time.Duration {
	return tones[c].duration
}

// NewCueStreamer 合成一个音效
func NewCueStreamer(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	t, ok := tones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", c)
	}

	streams := make([]beep.Streamer, 0, len(t.freqs))
	for _, f := range t.freqs {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", c, err)
		}
		streams = append(streams, sine)
	}

	var mixed beep.Streamer = streams[0]
	if len(streams) > 1 {
		mixed = beep.Mix(streams...)
	}

	return beep.Take(sr.N(t.duration), &effects.Volume{
		Streamer: mixed,
		Base:     2,
		Volume:   t.volume - float64(len(streams)-1),
	}), nil
}

// CuesFromStats 比较两次统计，返回新发生事件对应的音效
// 同一类事件每次最多触发一个音效，避免高频自动开火时叠加过多
func CuesFromStats(prev, cur game.Stats) []Cue {
	var cues []Cue
	if cur.ProjectilesFired > prev.ProjectilesFired {
		cues = append(cues, CueFire)
	}
	if cur.Bounces > prev.Bounces {
		cues = append(cues, CueBounce)
	}
	if cur.Settles > prev.Settles {
		cues = append(cues, CueSettle)
	}
	if cur.Hits > prev.Hits {
		cues = append(cues, CueHit)
	}
	return cues
}

// PCM 合成音效并编码为 16 位小端立体声，供 ebiten/audio 直接播放
func PCM(c Cue, sr beep.SampleRate) ([]byte, error) {
	s, err := NewCueStreamer(c, sr)
	if err != nil {
		return nil, err
	}

	buf := make([][2]float64, 512)
	out := make([]byte, 0, sr.N(Duration(c))*4)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok {
			return out, nil
		}
	}
}
