package components

import "github.com/decker502/drcat/pkg/config"

// WanderComponent 自主漫游行为（动物、敌人）
//
// 每 tick 以 TurnChance% 的概率随机换方向；不会撞上玩家时，
// 以 SkipChance% 的概率原地不动，否则按 Speed 移动。
type WanderComponent struct {
	Dir   Direction
	Speed int

	TurnChance int // 百分比
	SkipChance int // 百分比

	// Animate 每 tick 自行推进动画
	Animate bool

	// VerticalSlots 垂直移动时切换到 DownSlot / UpSlot
	VerticalSlots    bool
	DownSlot, UpSlot int
}

// NewWander 创建漫游行为，初始方向向下
func NewWander(speed int, tuning config.WanderConfig) *WanderComponent {
	return &WanderComponent{
		Dir:        Down,
		Speed:      speed,
		TurnChance: tuning.TurnChance,
		SkipChance: tuning.SkipChance,
		Animate:    tuning.Animate,
	}
}

// NewEnemyWander 敌人漫游：向下移动播放槽位 1，向上移动播放槽位 2
func NewEnemyWander(speed int, tuning config.WanderConfig) *WanderComponent {
	w := NewWander(speed, tuning)
	w.VerticalSlots = true
	w.DownSlot = 1
	w.UpSlot = 2
	return w
}
