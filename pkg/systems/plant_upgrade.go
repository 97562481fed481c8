package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
)

// CanUpgrade 植物是否还能升级
func CanUpgrade(plant *components.PlantComponent) bool {
	return plant.Upgradeable && plant.Level < config.PlantMaxLevel
}

// UpgradeCost 植物从当前等级升级的费用
func UpgradeCost(plant *components.PlantComponent) int {
	return config.UpgradeCost(plant.Level)
}

// Upgrade 植物升一级并按新等级重算属性
// 只在已满级时返回 false 且不做任何修改。
// 是否允许玩家升级（Upgradeable）和扣费由调用方 TryUpgrade 负责
func Upgrade(plant *components.PlantComponent, health *components.HealthComponent, stats *config.PlantStatsConfig) bool {
	if plant.Level >= config.PlantMaxLevel {
		return false
	}
	base, _ := stats.GetPlantStats(plant.PlantType)
	plant.Level++
	BehaviorFor(plant.PlantType).ApplyUpgrade(plant, health, base)
	return true
}
