package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/lawndefense/pkg/embedded"
)

func TestDefaultDifficultyConfig(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	if err := validateDifficultyConfig(cfg); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	tests := []struct {
		name          string
		startSun      int
		spawnRate     int
		minSpawnRate  int
		plantCooldown int
		firstWave     int
	}{
		{"简单", 300, 550, 400, 3500, 2500},
		{"普通", 200, 400, 300, 4500, 1500},
		{"困难", 150, 300, 220, 5000, 1000},
	}
	names := []string{DifficultyEasy, DifficultyNormal, DifficultyHard}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := cfg.Preset(names[i])
			if err != nil {
				t.Fatalf("Preset(%s) failed: %v", names[i], err)
			}
			if p.StartSunCount != tt.startSun {
				t.Errorf("StartSunCount = %d, want %d", p.StartSunCount, tt.startSun)
			}
			if p.ZombieSpawnRate != tt.spawnRate {
				t.Errorf("ZombieSpawnRate = %d, want %d", p.ZombieSpawnRate, tt.spawnRate)
			}
			if p.MinSpawnRate != tt.minSpawnRate {
				t.Errorf("MinSpawnRate = %d, want %d", p.MinSpawnRate, tt.minSpawnRate)
			}
			if p.PlantCooldown != tt.plantCooldown {
				t.Errorf("PlantCooldown = %d, want %d", p.PlantCooldown, tt.plantCooldown)
			}
			if p.WaveThresholds[0] != tt.firstWave {
				t.Errorf("WaveThresholds[0] = %d, want %d", p.WaveThresholds[0], tt.firstWave)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := DefaultDifficultyConfig().Preset("nightmare")
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestDifficultyNames(t *testing.T) {
	names := DefaultDifficultyConfig().Names()
	want := []string{"easy", "hard", "normal"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestParseDifficultyConfigValidation(t *testing.T) {
	valid := `
presets:
  normal:
    startSunCount: 200
    sunSpawnRate: 400
    zombieSpawnRate: 400
    minSpawnRate: 300
    spawnRateDecrease: 15
    zombieHealthMultiplier: 1.0
    zombieSpeedMultiplier: 1.5
    waveThresholds: [1500, 3500, 6500, 10000, 15000]
    plantCooldown: 4500
`
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"有效配置", valid, ""},
		{"空配置", "presets: {}", "at least one difficulty preset"},
		{"波次数量错误", strings.Replace(valid, "[1500, 3500, 6500, 10000, 15000]", "[1500, 3500]", 1), "expected 5 wave thresholds"},
		{"波次未排序", strings.Replace(valid, "[1500, 3500, 6500, 10000, 15000]", "[3500, 1500, 6500, 10000, 15000]", 1), "ascending"},
		{"下限大于初始间隔", strings.Replace(valid, "minSpawnRate: 300", "minSpawnRate: 500", 1), "exceeds"},
		{"倍率为零", strings.Replace(valid, "zombieSpeedMultiplier: 1.5", "zombieSpeedMultiplier: 0", 1), "multipliers must be positive"},
		{"无效 YAML", "presets: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseDifficultyConfig([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cfg.Presets["normal"].SpawnRateDecrease != 15 {
					t.Errorf("SpawnRateDecrease = %d, want 15", cfg.Presets["normal"].SpawnRateDecrease)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestDifficultyFileMatchesDefaults 仓库中的 data/difficulty.yaml 与内置默认值一致
func TestDifficultyFileMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../data/difficulty.yaml")
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	embedded.Init(fstest.MapFS{"data/difficulty.yaml": {Data: data}})
	defer embedded.Reset()

	cfg, err := LoadDifficultyConfig("data/difficulty.yaml")
	if err != nil {
		t.Fatalf("LoadDifficultyConfig failed: %v", err)
	}

	defaults := DefaultDifficultyConfig()
	for _, name := range defaults.Names() {
		got, err := cfg.Preset(name)
		if err != nil {
			t.Fatalf("preset %s missing: %v", name, err)
		}
		want := defaults.Presets[name]
		if got.StartSunCount != want.StartSunCount || got.SunSpawnRate != want.SunSpawnRate ||
			got.ZombieSpawnRate != want.ZombieSpawnRate || got.MinSpawnRate != want.MinSpawnRate ||
			got.SpawnRateDecrease != want.SpawnRateDecrease || got.PlantCooldown != want.PlantCooldown ||
			got.ZombieHealthMultiplier != want.ZombieHealthMultiplier ||
			got.ZombieSpeedMultiplier != want.ZombieSpeedMultiplier {
			t.Errorf("preset %s = %+v, want %+v", name, got, want)
		}
		for i := range want.WaveThresholds {
			if got.WaveThresholds[i] != want.WaveThresholds[i] {
				t.Errorf("preset %s wave %d = %d, want %d", name, i, got.WaveThresholds[i], want.WaveThresholds[i])
			}
		}
	}
}

func TestLoadDifficultyConfigMissingFile(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	defer embedded.Reset()

	if _, err := LoadDifficultyConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
