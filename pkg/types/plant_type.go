// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// PlantType 定义植物的类型
// 取值顺序与卡片栏从上到下的顺序一致
type PlantType int

const (
	// PlantUnknown 未知植物类型
	PlantUnknown PlantType = iota
	// PlantSunflower 向日葵
	PlantSunflower
	// PlantPeaShooter 豌豆射手
	PlantPeaShooter
	// PlantRepeater 双发射手
	PlantRepeater
	// PlantThreePeaShooter 三线射手
	PlantThreePeaShooter
	// PlantChomper 大嘴花
	PlantChomper
	// PlantWallNut 坚果墙
	PlantWallNut
	// PlantPotatoMines 土豆地雷
	PlantPotatoMines
	// PlantSpikeweed 地刺
	PlantSpikeweed
	// PlantMelonPult 西瓜投手
	PlantMelonPult
)

// CardOrder 卡片栏中植物的排列顺序
var CardOrder = []PlantType{
	PlantSunflower,
	PlantPeaShooter,
	PlantRepeater,
	PlantThreePeaShooter,
	PlantChomper,
	PlantWallNut,
	PlantPotatoMines,
	PlantSpikeweed,
	PlantMelonPult,
}

var plantTypeStringMap = map[PlantType]string{
	PlantSunflower:       "sunflower",
	PlantPeaShooter:      "peashooter",
	PlantRepeater:        "repeater",
	PlantThreePeaShooter: "threepeashooter",
	PlantChomper:         "chomper",
	PlantWallNut:         "wallnut",
	PlantPotatoMines:     "potatomines",
	PlantSpikeweed:       "spikeweed",
	PlantMelonPult:       "melonpult",
}

// String 返回植物类型的显示名称
func (p PlantType) String() string {
	switch p {
	case PlantSunflower:
		return "Sunflower"
	case PlantPeaShooter:
		return "PeaShooter"
	case PlantRepeater:
		return "Repeater"
	case PlantThreePeaShooter:
		return "ThreePeaShooter"
	case PlantChomper:
		return "Chomper"
	case PlantWallNut:
		return "WallNut"
	case PlantPotatoMines:
		return "PotatoMines"
	case PlantSpikeweed:
		return "Spikeweed"
	case PlantMelonPult:
		return "MelonPult"
	default:
		return "Unknown"
	}
}

// ConfigKey 返回植物在 plants.yaml 中的键名
func (p PlantType) ConfigKey() string {
	return plantTypeStringMap[p]
}

// PlantTypeFromString 将配置字符串转换为植物类型
// 未知字符串返回 PlantUnknown
func PlantTypeFromString(s string) PlantType {
	for t, name := range plantTypeStringMap {
		if name == s {
			return t
		}
	}
	return PlantUnknown
}
