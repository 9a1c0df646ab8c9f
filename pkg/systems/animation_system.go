package systems

import (
	"log"
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
)

// AnimationSystem 推进玩家与屏幕叠加层的帧动画
//
// 世界中的对象不在这里推进：静态物体保持第一帧，
// 漫游对象在自己的行为中按配置推进（见 world.DoBehaviours）。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进一帧
func (s *AnimationSystem) Update(now time.Duration) {
	for _, id := range ecs.GetEntitiesWith2[*components.CharacterComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Next(now)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.HUDComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Next(now)
	}
}

// PlayHUD 从头播放指定种类的全部叠加层动画（已在播放的保持不变）
func PlayHUD(em *ecs.EntityManager, kind components.HUDKind, now time.Duration) {
	for _, id := range ecs.GetEntitiesWith2[*components.HUDComponent, *components.SpriteComponent](em) {
		hud, _ := ecs.GetComponent[*components.HUDComponent](em, id)
		if hud.Kind != kind {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !sprite.Animation().Ongoing {
			log.Printf("[AnimationSystem] Playing HUD entity %d", id)
		}
		sprite.Play(now)
	}
}
