package scenes

import (
	"bytes"
	"log"

	"github.com/decker502/lawndefense/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 桌面端音频采样率
const AudioSampleRate = 44100

// AudioManager 音频管理器（ebiten 实现）
// 职责：
//   - 按 game.SoundTones 合成并缓存音效播放器
//   - 循环播放合成的背景音乐
//   - 从 game.SettingsManager 读取开关和音量
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	music           *audio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（每个进程只能创建一个）
//   - sm: game.SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// Play 播放音效，实现 AudioPlayer
func (am *AudioManager) Play(soundID string) {
	am.PlaySound(soundID)
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 开始循环播放背景音乐
func (am *AudioManager) PlayMusic() bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.music == nil {
		pcm := game.SynthesizePCM(game.MusicTones, AudioSampleRate, 0.5)
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := am.context.NewPlayer(loop)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create music player: %v", err)
			return false
		}
		am.music = player
	}
	if am.music.IsPlaying() {
		return true
	}
	am.music.SetVolume(am.getMusicVolume())
	am.music.Play()
	log.Printf("[AudioManager] Playing music (volume: %.2f)", am.getMusicVolume())
	return true
}

// StopMusic 暂停背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// SetMusicEnabled 切换背景音乐
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}
	if enabled {
		am.PlayMusic()
	} else {
		am.StopMusic()
	}
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	tones, ok := game.SoundTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(game.SynthesizePCM(tones, AudioSampleRate, 1.0))
	am.soundPlayers[soundID] = player
	return player
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}

// PreloadSounds 预合成全部音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	for soundID := range game.SoundTones {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}
