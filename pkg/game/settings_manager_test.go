package game

import (
	"testing"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata Manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MusicVolume != 0.7 || settings.SoundVolume != 0.8 {
		t.Errorf("volumes = %v/%v, want 0.7/0.8", settings.MusicVolume, settings.SoundVolume)
	}
	if !settings.MusicEnabled || !settings.SoundEnabled {
		t.Error("music and sound should be enabled by default")
	}
	if settings.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, want normal", settings.Difficulty)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := newTestGdataManager(t, "lawndefense_settings_test")

	sm1, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	sm1.SetMusicEnabled(false)
	sm1.SetSoundVolume(0.25)
	sm1.SetDifficulty(config.DifficultyHard)
	sm1.SetGameSpeed(3)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	settings := sm2.GetSettings()
	if settings.MusicEnabled {
		t.Error("MusicEnabled should be persisted as false")
	}
	if settings.SoundVolume != 0.25 {
		t.Errorf("SoundVolume = %v, want 0.25", settings.SoundVolume)
	}
	if settings.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", settings.Difficulty)
	}
	if settings.GameSpeed != 3 {
		t.Errorf("GameSpeed = %d, want 3", settings.GameSpeed)
	}
}

func TestSettingsNormalize(t *testing.T) {
	manager := newTestGdataManager(t, "lawndefense_settings_normalize_test")
	raw := []byte("musicVolume: 4\nsoundVolume: -1\ngameSpeed: 7\ndifficulty: \"\"\n")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	s := sm.GetSettings()
	if s.MusicVolume != 1 || s.SoundVolume != 0 {
		t.Errorf("volumes = %v/%v, want 1/0", s.MusicVolume, s.SoundVolume)
	}
	if s.GameSpeed != 1 {
		t.Errorf("GameSpeed = %d, want 1", s.GameSpeed)
	}
	if s.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, want normal", s.Difficulty)
	}
}

func TestSettingsCorrupted(t *testing.T) {
	manager := newTestGdataManager(t, "lawndefense_settings_corrupt_test")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("gameSpeed: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, err := NewSettingsManager(manager)
	if err == nil {
		t.Error("Expected error for corrupted settings")
	}
	if sm == nil || !sm.GetSettings().MusicEnabled {
		t.Error("Expected usable manager with default settings")
	}
}

func TestNilGdataManagerDegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) failed: %v", err)
	}

	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load in degraded mode should reset to defaults")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"负数", -0.5, 0},
		{"正常值", 0.4, 0.4},
		{"超过上限", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampVolume(tt.input); got != tt.want {
				t.Errorf("clampVolume(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	sm, _ := NewSettingsManager(nil)
	sm.SetMusicVolume(3)
	if sm.GetSettings().MusicVolume != 1 {
		t.Errorf("SetMusicVolume should clamp, got %v", sm.GetSettings().MusicVolume)
	}
	sm.SetGameSpeed(5)
	if sm.GetSettings().GameSpeed != 1 {
		t.Errorf("SetGameSpeed should ignore 5, got %d", sm.GetSettings().GameSpeed)
	}
}
