package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建新一局的游戏场景，避免 game 与 scenes 之间的循环依赖
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// NewGame 通过工厂创建新一局并切换过去
func (sm *SceneManager) NewGame() {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory not set")
		return
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] Error: SceneFactory returned nil")
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] Started a new game")
}

// Close 关闭当前场景（窗口关闭时调用）
func (sm *SceneManager) Close() {
	sm.SwitchTo(nil)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update() {
	if sm.currentScene != nil {
		sm.currentScene.Update()
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
