package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/decker502/drcat/pkg/world"
)

// ErrUnknownAction 交互区域引用了未注册的动作
var ErrUnknownAction = errors.New("unknown interaction action")

// Actions 交互动作表：动作名 → 回调
type Actions map[string]func() bool

// BuildWorld 根据配置构建世界
//
// 依次创建地图复合命中盒、交互提示精灵、静态物体、动物、敌人与交互区域，
// 最后设置初始滚动量。任何资源加载失败都会中止构建。
func BuildWorld(em *ecs.EntityManager, provider components.SheetProvider, cfg *config.GameConfig, actions Actions, rng world.Roller) (*world.World, error) {
	wc := cfg.World
	vp := cfg.Window.Viewport

	mapHitbox, err := buildMap(provider, wc.Map, vp)
	if err != nil {
		return nil, err
	}

	indicator, err := NewSprite(provider, []config.AnimationConfig{cfg.Assets.Indicator}, 0, 0, vp)
	if err != nil {
		return nil, fmt.Errorf("failed to build indicator: %w", err)
	}

	w := world.New(em, mapHitbox, indicator, wc.HighestLayer, rng)

	for i, p := range wc.Props {
		if err := spawnProp(w, provider, p, vp); err != nil {
			return nil, fmt.Errorf("props[%d]: %w", i, err)
		}
	}
	for i, a := range wc.Animals {
		if err := spawnAgent(w, provider, a, components.ActorAnimal, components.NewWander(a.Speed, cfg.Agents.Animal), vp); err != nil {
			return nil, fmt.Errorf("animals[%d]: %w", i, err)
		}
	}
	for i, e := range wc.Enemies {
		if err := spawnAgent(w, provider, e, components.ActorEnemy, components.NewEnemyWander(e.Speed, cfg.Agents.Enemy), vp); err != nil {
			return nil, fmt.Errorf("enemies[%d]: %w", i, err)
		}
	}

	for i, z := range wc.Zones {
		var cb func() bool
		if z.Action != "" {
			var ok bool
			if cb, ok = actions[z.Action]; !ok {
				return nil, fmt.Errorf("zones[%d]: %w: %q", i, ErrUnknownAction, z.Action)
			}
		}
		w.AddInteraction(components.NewInteractionZone(z.Action, z.Rect, cb, mapHitbox.Base.Dst))
	}

	w.X, w.Y = wc.StartX, wc.StartY
	log.Printf("[Entities] World built: %d props, %d animals, %d enemies, %d zones",
		len(wc.Props), len(wc.Animals), len(wc.Enemies), len(wc.Zones))
	return w, nil
}

// buildMap 地图底图不参与碰撞（命中盒为空），阻挡区域来自配置
func buildMap(provider components.SheetProvider, mc config.MapConfig, vp config.Viewport) (*components.CompositeHitbox, error) {
	base, err := NewSprite(provider, []config.AnimationConfig{mc.Animation}, 0, 0, vp)
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}
	scale(base, mc.Scale, mc.Scale)
	base.GenHitbox(utils.Rect{})

	hitbox := components.NewCompositeHitbox(base)
	hitbox.AddHitboxes(mc.Hitboxes)
	return hitbox, nil
}

func spawnProp(w *world.World, provider components.SheetProvider, p config.PropConfig, vp config.Viewport) error {
	sprite, err := NewSprite(provider, []config.AnimationConfig{p.Animation}, p.X, p.Y, vp)
	if err != nil {
		return err
	}
	scale(sprite, p.ScaleW, p.ScaleH)
	if p.Hitbox != nil {
		sprite.GenHitbox(p.Hitbox.Resolve(sprite.W, sprite.H))
	}
	sprite.Layer = p.Layer

	_, err = w.Spawn(components.ActorStatic, sprite)
	return err
}

func spawnAgent(w *world.World, provider components.SheetProvider, a config.AgentConfig, kind components.ActorKind, wander *components.WanderComponent, vp config.Viewport) error {
	sprite, err := NewSprite(provider, a.Animations, a.X, a.Y, vp)
	if err != nil {
		return err
	}
	scale(sprite, a.ScaleW, a.ScaleH)
	if a.Hitbox != nil {
		sprite.GenHitbox(a.Hitbox.Resolve(sprite.W, sprite.H))
	}
	sprite.Layer = a.Layer
	if a.InitialSlot != 0 {
		if err := sprite.SwitchTo(a.InitialSlot); err != nil {
			return err
		}
	}

	_, err = w.Spawn(kind, sprite, wander)
	return err
}
