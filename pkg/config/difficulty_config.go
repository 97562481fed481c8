package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decker502/lawndefense/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 难度名称
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// WaveThresholdCount 每个难度的波次阈值数量
const WaveThresholdCount = 5

// ErrUnknownDifficulty 请求了未定义的难度
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyPreset 单个难度的固定参数组合
type DifficultyPreset struct {
	StartSunCount          int     `yaml:"startSunCount"`          // 开局阳光
	SunSpawnRate           int     `yaml:"sunSpawnRate"`           // 天降阳光间隔（帧）
	ZombieSpawnRate        int     `yaml:"zombieSpawnRate"`        // 初始僵尸生成间隔（帧）
	MinSpawnRate           int     `yaml:"minSpawnRate"`           // 生成间隔下限（帧）
	SpawnRateDecrease      int     `yaml:"spawnRateDecrease"`      // 每次生成后间隔缩短量（帧）
	ZombieHealthMultiplier float64 `yaml:"zombieHealthMultiplier"` // 僵尸血量倍率
	ZombieSpeedMultiplier  float64 `yaml:"zombieSpeedMultiplier"`  // 僵尸速度倍率
	WaveThresholds         []int   `yaml:"waveThresholds"`         // 波次阈值（帧，升序）
	PlantCooldown          int     `yaml:"plantCooldown"`          // 卡片冷却（毫秒，真实时间）
}

// DifficultyConfig 难度配置文件结构
type DifficultyConfig struct {
	Presets map[string]DifficultyPreset `yaml:"presets"`
}

// DefaultDifficultyConfig 返回内置的三档难度
// data/difficulty.yaml 与此保持一致，缺少配置文件时使用
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		Presets: map[string]DifficultyPreset{
			DifficultyEasy: {
				StartSunCount:          300,
				SunSpawnRate:           300,
				ZombieSpawnRate:        550,
				MinSpawnRate:           400,
				SpawnRateDecrease:      10,
				ZombieHealthMultiplier: 0.7,
				ZombieSpeedMultiplier:  1.2,
				WaveThresholds:         []int{2500, 5000, 9000, 14000, 20000},
				PlantCooldown:          3500,
			},
			DifficultyNormal: {
				StartSunCount:          200,
				SunSpawnRate:           400,
				ZombieSpawnRate:        400,
				MinSpawnRate:           300,
				SpawnRateDecrease:      15,
				ZombieHealthMultiplier: 1.0,
				ZombieSpeedMultiplier:  1.5,
				WaveThresholds:         []int{1500, 3500, 6500, 10000, 15000},
				PlantCooldown:          4500,
			},
			DifficultyHard: {
				StartSunCount:          150,
				SunSpawnRate:           500,
				ZombieSpawnRate:        300,
				MinSpawnRate:           220,
				SpawnRateDecrease:      20,
				ZombieHealthMultiplier: 1.2,
				ZombieSpeedMultiplier:  1.8,
				WaveThresholds:         []int{1000, 2500, 4500, 7500, 12000},
				PlantCooldown:          5000,
			},
		},
	}
}

// LoadDifficultyConfig 从嵌入资源加载难度配置
func LoadDifficultyConfig(path string) (*DifficultyConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file %s: %w", path, err)
	}

	cfg, err := ParseDifficultyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid difficulty config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDifficultyConfig 解析并校验 YAML 格式的难度配置
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}
	if err := validateDifficultyConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateDifficultyConfig 校验难度配置的完整性和合法性
func validateDifficultyConfig(cfg *DifficultyConfig) error {
	if len(cfg.Presets) == 0 {
		return fmt.Errorf("at least one difficulty preset is required")
	}

	for name, p := range cfg.Presets {
		if p.StartSunCount < 0 {
			return fmt.Errorf("difficulty %s: startSunCount cannot be negative, got %d", name, p.StartSunCount)
		}
		if p.SunSpawnRate <= 0 {
			return fmt.Errorf("difficulty %s: sunSpawnRate must be positive, got %d", name, p.SunSpawnRate)
		}
		if p.ZombieSpawnRate <= 0 || p.MinSpawnRate <= 0 {
			return fmt.Errorf("difficulty %s: spawn rates must be positive", name)
		}
		if p.MinSpawnRate > p.ZombieSpawnRate {
			return fmt.Errorf("difficulty %s: minSpawnRate %d exceeds zombieSpawnRate %d", name, p.MinSpawnRate, p.ZombieSpawnRate)
		}
		if p.SpawnRateDecrease < 0 {
			return fmt.Errorf("difficulty %s: spawnRateDecrease cannot be negative", name)
		}
		if p.ZombieHealthMultiplier <= 0 || p.ZombieSpeedMultiplier <= 0 {
			return fmt.Errorf("difficulty %s: multipliers must be positive", name)
		}
		if len(p.WaveThresholds) != WaveThresholdCount {
			return fmt.Errorf("difficulty %s: expected %d wave thresholds, got %d", name, WaveThresholdCount, len(p.WaveThresholds))
		}
		if !sort.IntsAreSorted(p.WaveThresholds) {
			return fmt.Errorf("difficulty %s: wave thresholds must be ascending", name)
		}
		if p.PlantCooldown < 0 {
			return fmt.Errorf("difficulty %s: plantCooldown cannot be negative", name)
		}
	}
	return nil
}

// Preset 按名称获取难度
func (c *DifficultyConfig) Preset(name string) (DifficultyPreset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return DifficultyPreset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return p, nil
}

// Names 返回已定义难度名称（按字母排序）
func (c *DifficultyConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
