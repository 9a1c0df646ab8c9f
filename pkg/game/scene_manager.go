package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

// 场景标识
const (
	SceneIntro SceneID = "intro"
	SceneMenu  SceneID = "menu"
	ScenePlay  SceneID = "play"
)

// SceneFactory 创建场景；场景构建可能加载资源，因此可能失败
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// Only the active scene's Update and Draw are called.
//
// 场景之间通过 Goto 按 ID 跳转，彼此不需要相互引用，避免循环依赖。
// 跳转在当前帧的 Update 结束后才生效。
type SceneManager struct {
	current   Scene
	currentID SceneID
	factories map[SceneID]SceneFactory
	pending   *SceneID
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{factories: make(map[SceneID]SceneFactory)}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(id SceneID, factory SceneFactory) {
	sm.factories[id] = factory
}

// SwitchTo 立即切换到 scene
func (sm *SceneManager) SwitchTo(id SceneID, scene Scene) {
	if l, ok := sm.current.(Leaver); ok {
		l.Leave()
	}
	sm.current = scene
	sm.currentID = id
	log.Printf("[SceneManager] Switched to %s", id)
}

// Goto 请求在本帧结束后跳转到 id
func (sm *SceneManager) Goto(id SceneID) {
	sm.pending = &id
}

// Current 当前场景及其 ID
func (sm *SceneManager) Current() (SceneID, Scene) {
	return sm.currentID, sm.current
}

// Update 更新当前场景，然后执行挂起的跳转
func (sm *SceneManager) Update(f Frame) error {
	if sm.current != nil {
		if err := sm.current.Update(f); err != nil {
			return err
		}
	}
	if sm.pending == nil {
		return nil
	}

	id := *sm.pending
	sm.pending = nil
	return sm.load(id)
}

// Start 加载初始场景
func (sm *SceneManager) Start(id SceneID) error {
	return sm.load(id)
}

func (sm *SceneManager) load(id SceneID) error {
	factory, ok := sm.factories[id]
	if !ok {
		return fmt.Errorf("no scene registered for %q", id)
	}
	scene, err := factory()
	if err != nil {
		return fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	sm.SwitchTo(id, scene)
	return nil
}

// Draw renders the active scene. With no active scene it does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
