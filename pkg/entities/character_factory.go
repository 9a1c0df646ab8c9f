package entities

import (
	"fmt"
	"log"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/world"
)

// characterLayer 玩家的初始层，第一次深度排序后即被重新计算
const characterLayer = 1

// NewCharacter 创建玩家实体
//
// 玩家固定在视口中心，动画槽位顺序见 config.CharacterConfig。
// 实体带有 CharacterComponent 与 SpriteComponent，但不放入世界的层中。
func NewCharacter(em *ecs.EntityManager, provider components.SheetProvider, cfg *config.GameConfig) (world.Character, error) {
	cc := cfg.World.Character

	sprite, err := NewSprite(provider, cc.Slots(), 0, 0, cfg.Window.Viewport)
	if err != nil {
		return world.Character{}, fmt.Errorf("failed to build character: %w", err)
	}
	if cc.Width > 0 && cc.Height > 0 {
		sprite.W, sprite.H = cc.Width, cc.Height
		sprite.UpdateDst()
	}
	sprite.GenHitbox(cc.Hitbox.Resolve(sprite.W, sprite.H))
	sprite.Layer = characterLayer

	state := components.NewCharacter(cfg.Movement)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, state)
	ecs.AddComponent(em, id, &components.ActorComponent{Kind: components.ActorCharacter})

	log.Printf("[Entities] Character %d: %dx%d, %d animation slots", id, sprite.W, sprite.H, len(sprite.Animations))
	return world.Character{ID: id, Sprite: sprite, State: state}, nil
}
