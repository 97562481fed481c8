package components

import "github.com/decker502/lawndefense/pkg/types"

// PlantComponent 标识实体为植物
// 包含植物类型、所在格子以及随等级变化的战斗属性
//
// 战斗属性由 PlantBehavior.ApplyUpgrade 根据 Level 重新计算，
// 未使用的字段保持零值
type PlantComponent struct {
	// PlantType 植物类型
	PlantType types.PlantType
	// GridRow 所在草坪行 (0-4, 从上到下)
	GridRow int
	// GridCol 所在草坪列 (0-8, 从左到右)
	GridCol int

	// Level 当前等级 (1..config.PlantMaxLevel)
	Level int
	// Upgradeable 是否允许升级
	Upgradeable bool
	// Cost 种植费用
	Cost int

	Damage         float64 // 单次伤害
	AttackInterval int     // 攻击间隔（帧）
	AttackRange    float64 // 近战范围（大嘴花）
	SunValue       int     // 产出阳光数值（向日葵）
	SunInterval    int     // 产出间隔（帧）
	DamagePerTick  float64 // 每帧持续伤害（地刺）
	ArmDelay       int     // 准备时间（土豆地雷）

	// Attacking 本帧是否有攻击目标
	Attacking bool
	// AttackNow 射击节拍已到，等待开火
	AttackNow bool
	// Counter 植物自己的帧计数器（向日葵产出、西瓜投手冷却、大嘴花咀嚼、地雷准备）
	Counter int
	// Armed 地雷是否已就绪
	Armed bool
	// Chewing 大嘴花咀嚼中（冷却未结束）
	Chewing bool
}
