package config

import (
	"fmt"

	"github.com/decker502/lawndefense/pkg/embedded"
	"github.com/decker502/lawndefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// ZombieStats 单个僵尸类型的属性配置
// 难度倍率在生成时一次性作用于 Health 和 Velocity
type ZombieStats struct {
	Health   float64 `yaml:"health"`   // 基础血量
	Velocity float64 `yaml:"velocity"` // 基础移动速度（像素/帧）
	Flying   bool    `yaml:"flying"`   // 飞行单位不触发地面陷阱
	Width    float64 `yaml:"width"`    // 碰撞宽度
	Height   float64 `yaml:"height"`   // 碰撞高度
}

// ZombieStatsConfig 僵尸属性配置文件结构
type ZombieStatsConfig struct {
	Zombies map[string]ZombieStats `yaml:"zombies"` // 僵尸类型到属性的映射
	Waves   [][]string             `yaml:"waves"`   // 每个波次可出现的僵尸池（可重复以加权）
}

// DefaultZombieStats 返回内置僵尸属性与波次池
func DefaultZombieStats() *ZombieStatsConfig {
	return &ZombieStatsConfig{
		Zombies: map[string]ZombieStats{
			"normal":     {Health: 100, Velocity: 0.20, Width: 80, Height: 100},
			"conehead":   {Health: 200, Velocity: 0.20, Width: 80, Height: 100},
			"buckethead": {Health: 350, Velocity: 0.18, Width: 80, Height: 100},
			"balloon":    {Health: 150, Velocity: 0.30, Flying: true, Width: 80, Height: 100},
			"football":   {Health: 500, Velocity: 0.30, Width: 80, Height: 100},
			"dragon":     {Health: 800, Velocity: 0.25, Width: 90, Height: 100},
		},
		Waves: [][]string{
			{"normal"},
			{"normal", "normal", "conehead"},
			{"normal", "conehead", "conehead", "buckethead"},
			{"normal", "conehead", "buckethead", "balloon"},
			{"normal", "conehead", "buckethead", "balloon", "football"},
			{"normal", "conehead", "buckethead", "balloon", "football", "dragon"},
		},
	}
}

// LoadZombieStats 从嵌入资源加载僵尸属性配置
// 参数：
//
//	filepath - 配置文件路径（data/ 开头）
//
// 返回：
//
//	*ZombieStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadZombieStats(filepath string) (*ZombieStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie stats file %s: %w", filepath, err)
	}

	config, err := ParseZombieStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid zombie stats in %s: %w", filepath, err)
	}
	return config, nil
}

// ParseZombieStats 解析并校验 YAML 格式的僵尸属性配置
func ParseZombieStats(data []byte) (*ZombieStatsConfig, error) {
	var config ZombieStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse zombie stats YAML: %w", err)
	}

	if err := validateZombieStats(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateZombieStats 验证僵尸属性配置的完整性和合法性
func validateZombieStats(config *ZombieStatsConfig) error {
	if len(config.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required")
	}

	for name, stats := range config.Zombies {
		if types.ZombieTypeFromString(name) == types.ZombieUnknown {
			return fmt.Errorf("zombie %s: unknown zombie type", name)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("zombie %s: health must be positive, got %v", name, stats.Health)
		}
		if stats.Velocity <= 0 {
			return fmt.Errorf("zombie %s: velocity must be positive, got %v", name, stats.Velocity)
		}
		if stats.Width < 0 || stats.Height < 0 {
			return fmt.Errorf("zombie %s: size cannot be negative", name)
		}
	}

	if len(config.Waves) == 0 {
		return fmt.Errorf("at least one wave pool is required")
	}
	for i, pool := range config.Waves {
		if len(pool) == 0 {
			return fmt.Errorf("wave %d: pool is empty", i)
		}
		for _, name := range pool {
			if _, ok := config.Zombies[name]; !ok {
				return fmt.Errorf("wave %d: zombie %s has no stats", i, name)
			}
		}
	}

	return nil
}

// GetZombieStats 获取指定僵尸类型的完整属性
// 如果僵尸类型不存在，返回 nil 和 false
func (c *ZombieStatsConfig) GetZombieStats(zombieType types.ZombieType) (*ZombieStats, bool) {
	stats, ok := c.Zombies[zombieType.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// WavePool 返回指定波次的僵尸池
// 超出范围的波次使用最后一个池
func (c *ZombieStatsConfig) WavePool(wave int) []types.ZombieType {
	if len(c.Waves) == 0 {
		return nil
	}
	if wave < 0 {
		wave = 0
	}
	if wave >= len(c.Waves) {
		wave = len(c.Waves) - 1
	}

	pool := make([]types.ZombieType, 0, len(c.Waves[wave]))
	for _, name := range c.Waves[wave] {
		pool = append(pool, types.ZombieTypeFromString(name))
	}
	return pool
}
