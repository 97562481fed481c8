package components

// SpriteComponent 实体的绘制请求
// 只描述"画哪个精灵的第几帧"，具体图像由渲染器决定
type SpriteComponent struct {
	Name       string // 精灵名，如 "peashooter"、"zombie_normal"
	Frame      int    // 当前帧
	FrameCount int    // 帧数，<=1 表示静态
	FrameDelay int    // 每帧持续的游戏帧数
	Elapsed    int    // 当前帧已持续的游戏帧数
}
