package components

import "github.com/decker502/drcat/pkg/utils"

// InteractionZone 交互区域
//
// 玩家命中盒与区域重叠并按下交互键时触发回调。
type InteractionZone struct {
	// Name 动作名（来自配置，用于日志与事件）
	Name string
	// Hitbox 世界锚定矩形：地图相对矩形 + 地图 Dst 原点，创建后不变
	Hitbox utils.Rect
	// Callback 可为 nil，表示区域只显示提示不执行动作
	Callback func() bool
}

// NewInteractionZone 以地图 Dst 为基准创建交互区域
func NewInteractionZone(name string, local utils.Rect, cb func() bool, mapDst utils.Rect) *InteractionZone {
	return &InteractionZone{
		Name:     name,
		Hitbox:   local.Translate(mapDst.X, mapDst.Y),
		Callback: cb,
	}
}

// Check 玩家命中盒是否与区域（叠加世界滚动后）重叠
func (z *InteractionZone) Check(wx, wy int, hitbox utils.Rect) bool {
	return hitbox.HasIntersection(z.Hitbox.Translate(wx, wy))
}

// Exec 交互键按下时返回回调
func (z *InteractionZone) Exec(pressed bool) (func() bool, bool) {
	if !pressed || z.Callback == nil {
		return nil, false
	}
	return z.Callback, true
}
