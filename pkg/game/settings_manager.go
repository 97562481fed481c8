package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好，跨对局保存
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`

	Difficulty string `yaml:"difficulty"` // 上次开局的难度
	GameSpeed  int    `yaml:"gameSpeed"`  // 上次使用的速度倍率，取值见 SpeedOptions
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Difficulty:   config.DifficultyNormal,
		GameSpeed:    SpeedOptions[0],
	}
}

// normalize 修正手工编辑或旧版本留下的非法值
func (s *GameSettings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
	if SpeedIndexOf(s.GameSpeed) < 0 {
		s.GameSpeed = SpeedOptions[0]
	}
	if s.Difficulty == "" {
		s.Difficulty = config.DifficultyNormal
	}
}

// SettingsManager 在 gdata 中读写 GameSettings
//
// gdataManager 为 nil 时进入降级模式：设置只保存在内存中，Save 不报错。
// 修改方法只改内存，由调用方决定何时 Save。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// AppName gdata 存储使用的应用名，各前端共用同一份设置和最高分
const AppName = "lawndefense"

// gdata 中的存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并加载已保存的设置
// 总是返回可用的实例；加载失败时使用默认值并返回错误供调用方记录
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		return sm, err
	}
	return sm, nil
}

// Load 重新读取设置，不存在或损坏时回到默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := *DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()
	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded: music=%v sound=%v difficulty=%s speed=x%d",
		loaded.MusicEnabled, loaded.SoundEnabled, loaded.Difficulty, loaded.GameSpeed)
	return nil
}

// Save 写入 gdata，降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetDifficulty(name string) {
	sm.settings.Difficulty = name
}

// SetGameSpeed 记录速度倍率，不在 SpeedOptions 中的值被忽略
func (sm *SettingsManager) SetGameSpeed(speed int) {
	if SpeedIndexOf(speed) >= 0 {
		sm.settings.GameSpeed = speed
	}
}

func clampVolume(volume float64) float64 {
	return math.Max(0, math.Min(1, volume))
}
