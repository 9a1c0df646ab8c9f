package systems

import "time"

// CuePlayer 音效播放（*game.AudioManager 满足）
type CuePlayer interface {
	PlaySound(path string) bool
	StartLoop(path string) bool
	FadeOut(path string, d time.Duration)
}

// SoundCues 玩家动作对应的音效路径
type SoundCues struct {
	Running string
	Slash   string
	// RunningFadeOut 停止移动后奔跑音效的淡出时长
	RunningFadeOut time.Duration
}
