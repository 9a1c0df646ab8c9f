package world

import (
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
)

// Behaviour 某一种对象的每 tick 行为
//
// Decide 先选定本 tick 的意图；世界随后计算该意图是否会撞上玩家，
// 并把结果作为 blocked 传给 Behave。各字段都可以为 nil。
type Behaviour struct {
	Decide func(w *World, id ecs.EntityID)
	Behave func(w *World, id ecs.EntityID, blocked bool, now time.Duration)
	// Sweep 本 tick 意图移动覆盖的区域（已叠加世界滚动）；nil 表示不移动
	Sweep func(w *World, id ecs.EntityID, char Character) (utils.Rect, bool)
}

// defaultBehaviours 静态物体没有行为，动物与敌人共用漫游行为
func defaultBehaviours() map[components.ActorKind]Behaviour {
	wander := Behaviour{
		Decide: wanderDecide,
		Behave: wanderBehave,
		Sweep:  wanderSweep,
	}
	return map[components.ActorKind]Behaviour{
		components.ActorAnimal: wander,
		components.ActorEnemy:  wander,
	}
}

// SetBehaviour 替换某一种对象的行为
func (w *World) SetBehaviour(kind components.ActorKind, b Behaviour) {
	w.behaviours[kind] = b
}

// chance 以 percent% 的概率返回 true
func (w *World) chance(percent int) bool {
	return w.rng.Intn(100) < percent
}

// DoBehaviours 让所有自主对象执行一次行为
func (w *World) DoBehaviours(char Character, now time.Duration) {
	w.Each(func(id ecs.EntityID, actor *components.ActorComponent, _ *components.SpriteComponent) bool {
		b, ok := w.behaviours[actor.Kind]
		if !ok {
			return true
		}

		if b.Decide != nil {
			b.Decide(w, id)
		}

		blocked := false
		if b.Sweep != nil {
			if sweep, moving := b.Sweep(w, id, char); moving {
				blocked = sweep.HasIntersection(char.Sprite.Hitbox)
			}
		}

		if b.Behave != nil {
			b.Behave(w, id, blocked, now)
		}
		return true
	})
}

func wanderDecide(w *World, id ecs.EntityID) {
	wander, ok := ecs.GetComponent[*components.WanderComponent](w.em, id)
	if !ok {
		return
	}
	if w.chance(wander.TurnChance) {
		wander.Dir = components.AllDirections[w.rng.Intn(len(components.AllDirections))]
	}
}

// wanderSweep 对象沿当前方向扫掠自身速度加玩家速度的距离
func wanderSweep(w *World, id ecs.EntityID, char Character) (utils.Rect, bool) {
	wander, ok := ecs.GetComponent[*components.WanderComponent](w.em, id)
	if !ok {
		return utils.Rect{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return wander.Dir.Sweep(sprite.WorldHitbox(w.X, w.Y), wander.Speed+char.State.Speed), true
}

func wanderBehave(w *World, id ecs.EntityID, blocked bool, now time.Duration) {
	wander, ok := ecs.GetComponent[*components.WanderComponent](w.em, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	if !ok {
		return
	}

	if wander.Animate {
		sprite.Next(now)
	}
	if blocked || w.chance(wander.SkipChance) {
		return
	}

	dx, dy := wander.Dir.Delta(wander.Speed)
	if dx != 0 {
		sprite.OffsetX(dx)
	}
	if dy != 0 {
		sprite.OffsetY(dy)
	}

	if !wander.VerticalSlots {
		return
	}
	switch wander.Dir {
	case components.Down:
		_ = sprite.PlaySlot(wander.DownSlot, now)
	case components.Up:
		_ = sprite.PlaySlot(wander.UpSlot, now)
	}
}
