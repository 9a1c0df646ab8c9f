package world

// ActiveZones 玩家当前所处的交互区域索引
func (w *World) ActiveZones(char Character) []int {
	var active []int
	for i, z := range w.zones {
		if z.Check(w.X, w.Y, char.Sprite.Hitbox) {
			active = append(active, i)
		}
	}
	return active
}

// CheckInteract 玩家按下交互键时，返回第一个所处区域的回调及其索引
//
// 回调由调用方执行。
func (w *World) CheckInteract(char Character, pressed bool) (func() bool, int, bool) {
	for _, i := range w.ActiveZones(char) {
		if cb, ok := w.zones[i].Exec(pressed); ok {
			return cb, i, true
		}
	}
	return nil, -1, false
}
