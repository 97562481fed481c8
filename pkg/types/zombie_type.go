// Package types 定义共享的基础类型
package types

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota

	ZombieNormal     // 普通僵尸（最弱）
	ZombieConeHead   // 路障僵尸
	ZombieBucketHead // 铁桶僵尸
	ZombieBalloon    // 气球僵尸（飞行，免疫地面陷阱）
	ZombieFootball   // 橄榄球僵尸
	ZombieDragon     // 巨龙僵尸
)

// zombieTypeStringMap 僵尸类型到配置字符串的映射
var zombieTypeStringMap = map[ZombieType]string{
	ZombieNormal:     "normal",
	ZombieConeHead:   "conehead",
	ZombieBucketHead: "buckethead",
	ZombieBalloon:    "balloon",
	ZombieFootball:   "football",
	ZombieDragon:     "dragon",
}

// String 返回僵尸类型的配置字符串
func (z ZombieType) String() string {
	if s, ok := zombieTypeStringMap[z]; ok {
		return s
	}
	return "unknown"
}

// ZombieTypeFromString 将配置字符串转换为僵尸类型
func ZombieTypeFromString(s string) ZombieType {
	for t, name := range zombieTypeStringMap {
		if name == s {
			return t
		}
	}
	return ZombieUnknown
}
