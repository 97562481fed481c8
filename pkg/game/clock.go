package game

import "time"

// Clock 真实时间来源，卡片冷却使用
// 与游戏帧无关，游戏加速不影响冷却
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回当前时间
func (SystemClock) Now() time.Time { return time.Now() }
