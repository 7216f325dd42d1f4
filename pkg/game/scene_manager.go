package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// Scenes are registered by name; only the current scene's Update and Draw are called.
type SceneManager struct {
	scenes       map[string]Scene
	currentName  string
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SetScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[string]Scene),
	}
}

// AddScene 注册场景，同名场景会被覆盖
func (sm *SceneManager) AddScene(name string, scene Scene) {
	sm.scenes[name] = scene
}

// SetScene 切换到指定名称的场景
//
// 新场景实现 Enterable 时会以切换前的场景调用 Enter。
// 名称未注册时返回错误，当前场景保持不变。
func (sm *SceneManager) SetScene(name string) error {
	next, ok := sm.scenes[name]
	if !ok {
		return fmt.Errorf("scene %q not registered", name)
	}

	previous := sm.currentScene
	sm.currentScene = next
	sm.currentName = name
	log.Printf("[SceneManager] 切换到场景: %s", name)

	if enterable, ok := next.(Enterable); ok {
		enterable.Enter(previous)
	}
	return nil
}

// CurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景的名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// IsCurrent 判断指定名称的场景是否为当前场景
func (sm *SceneManager) IsCurrent(name string) bool {
	return sm.currentScene != nil && sm.currentName == name
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
