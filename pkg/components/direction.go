package components

import "github.com/decker502/drcat/pkg/utils"

// Direction 移动方向，数值同时是精灵的动画槽位（1-4 为左/右/上/下）
type Direction int

const (
	Left  Direction = 1
	Right Direction = 2
	Up    Direction = 3
	Down  Direction = 4
)

// AllDirections 随机选方向时使用的顺序
var AllDirections = [4]Direction{Right, Left, Up, Down}

// 角色动画槽位
const (
	SlotStanding    = 0
	SlotDeath       = 5
	SlotAttackRight = 10
	SlotAttackLeft  = 11
)

// Slot 方向对应的移动动画槽位
func (d Direction) Slot() int {
	return int(d)
}

// DashSlot 方向对应的冲刺动画槽位（6-9）
func (d Direction) DashSlot() int {
	return int(d) + 5
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Sweep 沿方向把矩形扩展 dist 像素，覆盖移动经过的整个区域
//
// 向下/向右只增加高/宽；向上/向左同时把原点前移。
func (d Direction) Sweep(r utils.Rect, dist int) utils.Rect {
	switch d {
	case Down:
		r.H += dist
	case Up:
		r.Y -= dist
		r.H += dist
	case Right:
		r.W += dist
	case Left:
		r.X -= dist
		r.W += dist
	}
	return r
}

// Delta 沿方向移动 dist 像素的位移
func (d Direction) Delta(dist int) (int, int) {
	switch d {
	case Down:
		return 0, dist
	case Up:
		return 0, -dist
	case Right:
		return dist, 0
	case Left:
		return -dist, 0
	}
	return 0, 0
}
