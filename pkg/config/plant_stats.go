package config

import (
	"fmt"

	"github.com/decker502/lawndefense/pkg/embedded"
	"github.com/decker502/lawndefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// 植物通用常量
const (
	PlantBaseHealth      = 100.0 // 默认植物血量
	PlantMaxLevel        = 5     // 植物最高等级
	PlantBaseUpgradeCost = 40    // 1 级升 2 级的费用
	PlantUpgradeCostStep = 25    // 每级增加的升级费用
)

// PlantStats 单个植物类型在 1 级时的属性
// 各字段仅对使用它的植物有意义，其余保持零值
type PlantStats struct {
	Cost          int     `yaml:"cost"`          // 种植费用（阳光）
	Health        float64 `yaml:"health"`        // 初始血量
	Upgradeable   bool    `yaml:"upgradeable"`   // 是否可升级
	Damage        float64 `yaml:"damage"`        // 单次伤害
	Interval      int     `yaml:"interval"`      // 攻击/产出间隔（帧）
	Range         float64 `yaml:"range"`         // 攻击范围（像素）
	SunValue      int     `yaml:"sunValue"`      // 产出阳光数值
	ArmDelay      int     `yaml:"armDelay"`      // 准备时间（帧）
	DamagePerTick float64 `yaml:"damagePerTick"` // 每帧持续伤害
}

// PlantStatsConfig 植物属性配置文件结构
type PlantStatsConfig struct {
	Plants map[string]PlantStats `yaml:"plants"`
}

// DefaultPlantStats 返回内置植物属性表
func DefaultPlantStats() *PlantStatsConfig {
	return &PlantStatsConfig{
		Plants: map[string]PlantStats{
			"sunflower":       {Cost: 25, Health: PlantBaseHealth, Upgradeable: true, SunValue: 25, Interval: 2000},
			"peashooter":      {Cost: 25, Health: PlantBaseHealth, Upgradeable: true, Damage: 10, Interval: 100},
			"repeater":        {Cost: 40, Health: PlantBaseHealth, Upgradeable: true, Damage: 10, Interval: 100},
			"threepeashooter": {Cost: 75, Health: PlantBaseHealth, Upgradeable: true, Damage: 10, Interval: 100},
			"chomper":         {Cost: 50, Health: PlantBaseHealth, Upgradeable: true, Interval: 600, Range: 50},
			"wallnut":         {Cost: 50, Health: 1000, Upgradeable: true},
			"potatomines":     {Cost: 25, Health: PlantBaseHealth, Upgradeable: false, Damage: 1800, ArmDelay: 900},
			"spikeweed":       {Cost: 20, Health: PlantBaseHealth, Upgradeable: true, DamagePerTick: 0.12},
			"melonpult":       {Cost: 50, Health: PlantBaseHealth, Upgradeable: true, Damage: 25, Interval: 100},
		},
	}
}

// LoadPlantStats 从嵌入资源加载植物属性配置
func LoadPlantStats(filepath string) (*PlantStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant stats file %s: %w", filepath, err)
	}

	config, err := ParsePlantStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plant stats in %s: %w", filepath, err)
	}
	return config, nil
}

// ParsePlantStats 解析并校验 YAML 格式的植物属性配置
func ParsePlantStats(data []byte) (*PlantStatsConfig, error) {
	var config PlantStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse plant stats YAML: %w", err)
	}

	if err := validatePlantStats(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validatePlantStats 验证植物属性配置
// 卡片栏中的每种植物都必须有配置
func validatePlantStats(config *PlantStatsConfig) error {
	for _, pt := range types.CardOrder {
		if _, ok := config.Plants[pt.ConfigKey()]; !ok {
			return fmt.Errorf("plant %s: missing stats", pt.ConfigKey())
		}
	}

	for name, stats := range config.Plants {
		if types.PlantTypeFromString(name) == types.PlantUnknown {
			return fmt.Errorf("plant %s: unknown plant type", name)
		}
		if stats.Cost < 0 {
			return fmt.Errorf("plant %s: cost cannot be negative, got %d", name, stats.Cost)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("plant %s: health must be positive, got %v", name, stats.Health)
		}
		if stats.Interval < 0 || stats.ArmDelay < 0 {
			return fmt.Errorf("plant %s: timers cannot be negative", name)
		}
		if stats.Damage < 0 || stats.DamagePerTick < 0 || stats.Range < 0 {
			return fmt.Errorf("plant %s: combat stats cannot be negative", name)
		}
	}
	return nil
}

// GetPlantStats 获取植物属性，不存在时返回 false
func (c *PlantStatsConfig) GetPlantStats(plantType types.PlantType) (PlantStats, bool) {
	stats, ok := c.Plants[plantType.ConfigKey()]
	return stats, ok
}

// PlantCost 获取植物种植费用，未配置的植物返回 0
func (c *PlantStatsConfig) PlantCost(plantType types.PlantType) int {
	return c.Plants[plantType.ConfigKey()].Cost
}

// UpgradeCost 返回从当前等级升到下一级的费用
func UpgradeCost(level int) int {
	if level < 1 {
		level = 1
	}
	return PlantBaseUpgradeCost + PlantUpgradeCostStep*(level-1)
}
