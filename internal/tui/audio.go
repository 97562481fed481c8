package tui

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/decker502/lawndefense/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices 同时播放的音效上限，超出时丢弃新的音效
const maxVoices = 8

// BeepAudio 用 beep 合成音效和背景音乐
// 实现 game.AudioPlayer 和背景音乐开关
type BeepAudio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewBeepAudio 创建音频输出，Init 之前所有播放请求被忽略
func NewBeepAudio() *BeepAudio {
	return &BeepAudio{mixer: &beep.Mixer{}}
}

// Init 打开扬声器
func (a *BeepAudio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Close 停止全部声音并关闭扬声器
func (a *BeepAudio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	a.initialized = false
}

// Play 播放音效
func (a *BeepAudio) Play(soundID string) {
	tones, ok := game.SoundTones[soundID]
	if !ok {
		log.Printf("[BeepAudio] Warning: Sound not found: %s", soundID)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Lock()
	if a.mixer.Len() < maxVoices {
		a.mixer.Add(NewToneStreamer(tones, sampleRate, 0.25, false))
	}
	speaker.Unlock()
}

// SetMusicEnabled 开关背景音乐
func (a *BeepAudio) SetMusicEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if a.music == nil {
		if !enabled {
			return
		}
		a.music = &beep.Ctrl{Streamer: NewToneStreamer(game.MusicTones, sampleRate, 0.1, true)}
		a.mixer.Add(a.music)
	}
	a.music.Paused = !enabled
}

// ToneStreamer 把音序列合成为正弦波
type ToneStreamer struct {
	tones  []game.Tone
	sr     beep.SampleRate
	volume float64
	loop   bool

	index int // 当前音的下标
	pos   int // 当前音已输出的采样数
	phase float64
}

// NewToneStreamer 创建音序列流，loop 为 true 时无限循环
func NewToneStreamer(tones []game.Tone, sr beep.SampleRate, volume float64, loop bool) *ToneStreamer {
	return &ToneStreamer{tones: tones, sr: sr, volume: volume, loop: loop}
}

// Stream 实现 beep.Streamer
func (s *ToneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.index >= len(s.tones) {
			if !s.loop || len(s.tones) == 0 {
				return i, i > 0
			}
			s.index = 0
		}
		tone := s.tones[s.index]
		length := s.sr.N(tone.Duration)

		var v float64
		if tone.Freq > 0 {
			// 首尾各 5ms 淡入淡出，避免爆音
			env := 1.0
			fade := s.sr.N(5 * time.Millisecond)
			if s.pos < fade {
				env = float64(s.pos) / float64(fade)
			} else if length-s.pos < fade {
				env = float64(length-s.pos) / float64(fade)
			}
			v = math.Sin(2*math.Pi*s.phase) * s.volume * env
			s.phase += tone.Freq / float64(s.sr)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		s.pos++
		if s.pos >= length {
			s.index++
			s.pos = 0
			s.phase = 0
		}
	}
	return len(samples), true
}

// Err 实现 beep.Streamer
func (s *ToneStreamer) Err() error { return nil }
