package game

import (
	"time"

	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame 一帧的输入与时间
type Frame struct {
	// Now 自启动以来的逻辑时长
	Now time.Duration
	// Delta 本帧的秒数（用于补间）
	Delta float64
	// Input 本帧的输入快照
	Input utils.InputState
}

// Scene represents one screen of the game (intro, menu, play).
// Each scene owns its update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// A returned error aborts the game loop.
	Update(f Frame) error

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Leaver 可选接口：场景被切走时调用（停止循环音效等）
type Leaver interface {
	Leave()
}
