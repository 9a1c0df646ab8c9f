package components

import (
	"time"

	"github.com/decker502/drcat/pkg/config"
)

// CharacterComponent 玩家角色
//
// 角色在屏幕上固定不动，移动通过反向滚动世界实现；
// 因此这里只保存朝向、速度和冲刺冷却，位置即世界滚动量。
type CharacterComponent struct {
	Dir   Direction
	Speed int

	// LastDash 上次冲刺时间；HasDashed 为 false 时无效
	LastDash  time.Duration
	HasDashed bool

	Tuning config.MovementConfig
}

// NewCharacter 创建角色，初始朝下，使用基础速度
func NewCharacter(tuning config.MovementConfig) *CharacterComponent {
	return &CharacterComponent{
		Dir:    Down,
		Speed:  tuning.BaseSpeed,
		Tuning: tuning,
	}
}

// ResolveSpeed 计算本 tick 的速度
//
// 优先级从低到高: 基础速度 < 加速键 < 冲刺后的惯性窗口 < 冲刺触发。
// 冲刺需要本帧刚按下冲刺键，且距上次冲刺超过冷却时间（或从未冲刺过）。
//
// 返回:
//   - bool: 本 tick 是否触发了冲刺（调用方据此播放冲刺动画和冷却指示）
func (c *CharacterComponent) ResolveSpeed(sprint, dashPressed bool, now time.Duration) bool {
	t := c.Tuning

	c.Speed = t.BaseSpeed
	if sprint {
		c.Speed = t.SprintSpeed
	}

	if c.HasDashed && now-c.LastDash < t.DashBurstWindow {
		c.Speed = t.DashBurstSpeed
	}

	if dashPressed && c.DashReady(now) {
		c.Speed = t.DashSpeed
		c.LastDash = now
		c.HasDashed = true
		return true
	}
	return false
}

// DashReady 冷却是否结束
func (c *CharacterComponent) DashReady(now time.Duration) bool {
	return !c.HasDashed || now-c.LastDash > c.Tuning.DashCooldown
}
