package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸、植物等可被攻击的实体
// 使用浮点数以支持每帧的持续伤害（地刺、啃食）
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值
}

// IsDead 生命值是否耗尽
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
