package game

import "time"

// 音效ID
const (
	SoundPlant         = "plant"
	SoundShoot         = "shoot"
	SoundHit           = "hit"
	SoundSunCollect    = "sun"
	SoundChomp         = "chomp"
	SoundExplode       = "explode"
	SoundZombieDie     = "zombie_die"
	SoundLawnCleaner   = "lawn_cleaner"
	SoundUpgrade       = "upgrade"
	SoundShovel        = "shovel"
	SoundLevelComplete = "level_complete"
	SoundGameOver      = "game_over"
)

// AudioPlayer 音效播放接口
// 是否静音由调用方根据 GameState.Volume 决定
type AudioPlayer interface {
	Play(soundID string)
}

// Tone 合成音效中的一个音
type Tone struct {
	Freq     float64 // 频率（Hz），0 表示静音
	Duration time.Duration
}

// SoundTones 每个音效对应的合成音序列
// 游戏不附带音频素材，各前端按此表合成
var SoundTones = map[string][]Tone{
	SoundPlant:         {{Freq: 220, Duration: 60 * time.Millisecond}, {Freq: 330, Duration: 60 * time.Millisecond}},
	SoundShoot:         {{Freq: 660, Duration: 30 * time.Millisecond}},
	SoundHit:           {{Freq: 180, Duration: 40 * time.Millisecond}},
	SoundSunCollect:    {{Freq: 880, Duration: 50 * time.Millisecond}, {Freq: 1320, Duration: 80 * time.Millisecond}},
	SoundChomp:         {{Freq: 140, Duration: 80 * time.Millisecond}, {Freq: 110, Duration: 80 * time.Millisecond}},
	SoundExplode:       {{Freq: 70, Duration: 250 * time.Millisecond}},
	SoundZombieDie:     {{Freq: 200, Duration: 80 * time.Millisecond}, {Freq: 150, Duration: 120 * time.Millisecond}},
	SoundLawnCleaner:   {{Freq: 120, Duration: 300 * time.Millisecond}},
	SoundUpgrade:       {{Freq: 523, Duration: 60 * time.Millisecond}, {Freq: 659, Duration: 60 * time.Millisecond}, {Freq: 784, Duration: 90 * time.Millisecond}},
	SoundShovel:        {{Freq: 300, Duration: 70 * time.Millisecond}},
	SoundLevelComplete: {{Freq: 523, Duration: 120 * time.Millisecond}, {Freq: 784, Duration: 120 * time.Millisecond}, {Freq: 1046, Duration: 200 * time.Millisecond}},
	SoundGameOver:      {{Freq: 392, Duration: 200 * time.Millisecond}, {Freq: 311, Duration: 200 * time.Millisecond}, {Freq: 262, Duration: 400 * time.Millisecond}},
}

// MusicTones 背景音乐的一个循环
var MusicTones = []Tone{
	{Freq: 262, Duration: 250 * time.Millisecond},
	{Freq: 330, Duration: 250 * time.Millisecond},
	{Freq: 392, Duration: 250 * time.Millisecond},
	{Freq: 330, Duration: 250 * time.Millisecond},
	{Freq: 294, Duration: 250 * time.Millisecond},
	{Freq: 349, Duration: 250 * time.Millisecond},
	{Freq: 440, Duration: 250 * time.Millisecond},
	{Freq: 0, Duration: 250 * time.Millisecond},
}

// TotalDuration 音序列的总时长
func TotalDuration(tones []Tone) time.Duration {
	var d time.Duration
	for _, t := range tones {
		d += t.Duration
	}
	return d
}
