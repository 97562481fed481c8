package components

// LawnCleanerComponent 除草车组件
// 每行一辆，僵尸到达时触发，向右行驶并消灭该行僵尸，驶出屏幕后删除
type LawnCleanerComponent struct {
	Row       int     // 所在行 (0-4)
	Triggered bool    // 是否已触发
	Speed     float64 // 行驶速度（像素/帧）
	Delete    bool
}
