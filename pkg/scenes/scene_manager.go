package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，ebiten 的 Update/Draw 只转发给它
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有场景的管理器，用 SwitchTo 设置第一个场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换场景，从下一次 Update 开始生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switching to %T", scene)
	sm.currentScene = scene
}

// GetCurrentScene 返回当前场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 推进当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Draw(screen)
}
