package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（未收集的阳光、死亡中的僵尸）
// 单位为游戏帧，随游戏速度加速
type LifetimeComponent struct {
	MaxLifetime     int  // 最大生命周期（帧）
	CurrentLifetime int  // 当前已存在时间（帧）
	IsExpired       bool // 是否已过期
}
