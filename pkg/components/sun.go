package components

// SunComponent 标记实体为阳光
// 阳光在指针经过时收集，收集只计入一次
type SunComponent struct {
	Value     int     // 收集后增加的阳光数
	TargetY   float64 // 目标落地Y坐标
	Collected bool    // 已被收集
	Delete    bool    // 等待清理
}
