// Package world 管理滚动世界：地图碰撞、分层对象、交互区域
//
// # 坐标
//
// 玩家角色固定在视口中心，移动时反向滚动世界 (X, Y)。
// 世界中对象的 Dst/Hitbox 存的是未滚动的坐标，绘制和碰撞时再叠加 (X, Y)；
// 玩家角色的 Dst/Hitbox 不叠加滚动。
//
// # 存储
//
// 对象存放在 ecs.EntityManager 中，World 只按层保存实体 ID。
// 层 0 保留，1..highest 用于对象，highest+1 供玩家角色排到最上层。
// 同一层内按加入顺序遍历，所有按层遍历的操作（碰撞、深度排序、行为、绘制）顺序一致。
package world

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
)

// ErrLayerOutOfRange 对象层超出世界层数
var ErrLayerOutOfRange = errors.New("layer out of range")

// Roller 随机数来源（*rand.Rand 满足该接口）
type Roller interface {
	Intn(n int) int
}

// Character 玩家角色视图：精灵与移动状态
type Character struct {
	ID     ecs.EntityID
	Sprite *components.SpriteComponent
	State  *components.CharacterComponent
}

// World 滚动世界
type World struct {
	// X, Y 世界滚动量
	X, Y int

	// Map 地图底图及其静态碰撞区域
	Map *components.CompositeHitbox
	// Indicator 玩家位于交互区域内时显示的提示精灵
	Indicator *components.SpriteComponent

	em     *ecs.EntityManager
	layers [][]ecs.EntityID
	zones  []*components.InteractionZone

	rng        Roller
	behaviours map[components.ActorKind]Behaviour
}

// New 创建世界
//
// 参数:
//   - em: 对象所在的实体管理器（可与场景共享）
//   - mapHitbox: 地图复合命中盒
//   - indicator: 交互提示精灵，可为 nil
//   - highest: 对象使用的最高层
//   - rng: 随机数来源，nil 时使用以当前时间为种子的 math/rand
func New(em *ecs.EntityManager, mapHitbox *components.CompositeHitbox, indicator *components.SpriteComponent, highest int, rng Roller) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		Map:       mapHitbox,
		Indicator: indicator,
		em:        em,
		layers:    make([][]ecs.EntityID, highest+2),
		rng:       rng,
	}
	w.behaviours = defaultBehaviours()
	return w
}

// EntityManager 对象所在的实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// LayerCount 层数（含保留的层 0 与角色专用的最上层）
func (w *World) LayerCount() int {
	return len(w.layers)
}

// Spawn 创建对象并放入其精灵所在的层
//
// extra 为附加组件（如 *components.WanderComponent）。
func (w *World) Spawn(kind components.ActorKind, sprite *components.SpriteComponent, extra ...any) (ecs.EntityID, error) {
	if sprite.Layer < 0 || sprite.Layer >= len(w.layers) {
		return ecs.InvalidEntity, fmt.Errorf("%w: %s at layer %d, world has %d layers",
			ErrLayerOutOfRange, kind, sprite.Layer, len(w.layers))
	}

	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, &components.ActorComponent{Kind: kind})
	ecs.AddComponent(w.em, id, sprite)
	for _, c := range extra {
		w.em.AddComponent(id, c)
	}

	w.layers[sprite.Layer] = append(w.layers[sprite.Layer], id)
	log.Printf("[World] Spawned %s entity %d at layer %d", kind, id, sprite.Layer)
	return id, nil
}

// Remove 从世界中移除对象并销毁实体
func (w *World) Remove(id ecs.EntityID) bool {
	for l, layer := range w.layers {
		for i, other := range layer {
			if other != id {
				continue
			}
			w.layers[l] = append(layer[:i], layer[i+1:]...)
			w.em.DestroyEntity(id)
			w.em.RemoveMarkedEntities()
			return true
		}
	}
	return false
}

// Each 按层、按加入顺序遍历对象；fn 返回 false 时停止
func (w *World) Each(fn func(id ecs.EntityID, actor *components.ActorComponent, sprite *components.SpriteComponent) bool) {
	for _, layer := range w.layers {
		for _, id := range layer {
			actor, ok := ecs.GetComponent[*components.ActorComponent](w.em, id)
			if !ok {
				continue
			}
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](w.em, id)
			if !ok {
				continue
			}
			if !fn(id, actor, sprite) {
				return
			}
		}
	}
}

// AddInteraction 添加交互区域
func (w *World) AddInteraction(z *components.InteractionZone) {
	w.zones = append(w.zones, z)
}

// Zones 全部交互区域
func (w *World) Zones() []*components.InteractionZone {
	return w.zones
}
