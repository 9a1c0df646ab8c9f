package game

import "time"

// Clock 逻辑时钟
//
// 每次 Update 前调用 Tick 前进一帧；游戏内所有计时（动画帧间隔、冲刺冷却）
// 都使用 Now 返回的"自启动以来的时长"，而不是墙钟时间，因此同样的输入序列
// 总能得到同样的结果。
type Clock struct {
	tps   int
	ticks int64
}

// NewClock 创建时钟，tps 为每秒逻辑帧数
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{tps: tps}
}

// Tick 前进一帧
func (c *Clock) Tick() {
	c.ticks++
}

// Ticks 已经过的帧数
func (c *Clock) Ticks() int64 {
	return c.ticks
}

// Now 自启动以来的时长
func (c *Clock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.tps)
}

// Delta 每帧的秒数
func (c *Clock) Delta() float64 {
	return 1.0 / float64(c.tps)
}
