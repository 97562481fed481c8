package components

// ProjectileKind 子弹轨迹类型
type ProjectileKind int

const (
	// ProjectileStraight 直线飞行
	ProjectileStraight ProjectileKind = iota
	// ProjectileParabolic 抛物线（西瓜投手）
	ProjectileParabolic
	// ProjectileTop 先向上偏移一行再平飞（三线射手）
	ProjectileTop
	// ProjectileBottom 先向下偏移一行再平飞（三线射手）
	ProjectileBottom
)

// String 返回轨迹名称，也用作精灵名
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileStraight:
		return "pea"
	case ProjectileParabolic:
		return "melon"
	case ProjectileTop:
		return "pea_top"
	case ProjectileBottom:
		return "pea_bottom"
	}
	return "projectile"
}

// ProjectileComponent 子弹状态
// 子弹只伤害第一个碰到的僵尸，然后标记删除
type ProjectileComponent struct {
	Kind      ProjectileKind
	Damage    float64
	Speed     float64 // 水平速度（像素/帧，乘游戏速度前）
	VY        float64 // 垂直速度（抛物线）
	BaselineY float64 // 发射时所在行的基准 Y（抛物线落点）
	Traveled  float64 // 已完成的垂直偏移（上下弹道）
	Row       int     // 发射行
	Delete    bool
}
