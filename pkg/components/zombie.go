package components

import "github.com/decker502/lawndefense/pkg/types"

// ZombieComponent 标识实体为僵尸
//
// 状态流转: 前进 -> 被阻挡(啃食) -> 死亡中 -> 删除
// Increment 为 0 表示被植物阻挡，Die 一旦为 true 不再回退
type ZombieComponent struct {
	ZombieType types.ZombieType
	Row        int     // 所在行 (0-4)
	Velocity   float64 // 已乘难度倍率的速度
	Increment  float64 // 本帧位移量，被阻挡时为 0
	Attacking  bool    // 正在啃食植物
	Flying     bool    // 飞行单位（气球）
	Die        bool    // 已死亡，击杀已计分
	Eaten      bool    // 被大嘴花吞掉，死亡后立即删除
	Delete     bool    // 等待清理
}
