package world

import (
	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
)

// CanMove 玩家能否沿 dir 移动一个速度单位
//
// 把玩家命中盒沿 dir 扫掠 speed 像素，与地图或任一对象重叠时返回 false。
// 只做查询，不修改任何状态。
func (w *World) CanMove(char Character, dir components.Direction) bool {
	sweep := dir.Sweep(char.Sprite.Hitbox, char.State.Speed)

	if w.Map != nil && w.Map.CollideAll(sweep, w.X, w.Y) {
		return false
	}

	free := true
	w.Each(func(_ ecs.EntityID, _ *components.ActorComponent, sprite *components.SpriteComponent) bool {
		if !sprite.CheckMove(w.X, w.Y, sweep) {
			free = false
		}
		return free
	})
	return free
}

// MoveCharacter 沿 dir 移动玩家（反向滚动世界），并切换到对应的移动动画
//
// 向右移动时世界向左滚动，其余方向同理。
func (w *World) MoveCharacter(char Character, dir components.Direction) {
	dx, dy := dir.Delta(char.State.Speed)
	w.X -= dx
	w.Y -= dy

	char.State.Dir = dir
	// 方向槽位 1-4 在角色构建时保证存在
	_ = char.Sprite.SwitchTo(dir.Slot())
}

// ReorderChar 根据与各对象的上下位置重新计算玩家所在层
//
// 对象命中盒顶边在玩家之下且所在层低于玩家时，玩家降到该层（先绘制玩家）；
// 对象在玩家之上时，玩家排到该层之后。逐个对象覆盖，最后一个生效。
func (w *World) ReorderChar(char Character) {
	top := char.Sprite.Hitbox.Y

	w.Each(func(_ ecs.EntityID, _ *components.ActorComponent, sprite *components.SpriteComponent) bool {
		y := sprite.WorldHitbox(w.X, w.Y).Y
		switch {
		case y > top && sprite.Layer < char.Sprite.Layer:
			char.Sprite.Layer = sprite.Layer
		case y < top:
			char.Sprite.Layer = sprite.Layer + 1
		}
		return true
	})
}
