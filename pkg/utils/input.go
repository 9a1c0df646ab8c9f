package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入快照
//
// 核心逻辑只读取快照，从不直接访问 ebiten 的输入 API，
// 因此测试可以用 NewInputState 构造任意按键组合。
type InputState struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool

	// 鼠标位置（屏幕坐标）
	MouseX, MouseY int
	// 鼠标左键是否按下
	MouseLeft bool
	// 鼠标左键是否在本帧刚刚按下
	MouseLeftJustPressed bool
}

// NewInputState 根据按键列表构造输入快照
//
// 参数:
//   - pressed: 当前处于按下状态的按键
//   - justPressed: 本帧刚刚按下的按键（同时视为按下）
func NewInputState(pressed []ebiten.Key, justPressed []ebiten.Key) InputState {
	state := InputState{
		pressed:     make(map[ebiten.Key]bool, len(pressed)+len(justPressed)),
		justPressed: make(map[ebiten.Key]bool, len(justPressed)),
	}
	for _, k := range pressed {
		state.pressed[k] = true
	}
	for _, k := range justPressed {
		state.pressed[k] = true
		state.justPressed[k] = true
	}
	return state
}

// IsPressed 按键是否处于按下状态
func (s InputState) IsPressed(key ebiten.Key) bool {
	return s.pressed[key]
}

// IsJustPressed 按键是否在本帧刚刚按下
func (s InputState) IsJustPressed(key ebiten.Key) bool {
	return s.justPressed[key]
}

// PollInput 从 ebiten 读取当前帧的输入快照
// 只采集 watched 中列出的按键，避免每帧遍历全部键码
func PollInput(watched []ebiten.Key) InputState {
	var pressed, just []ebiten.Key
	for _, k := range watched {
		if inpututil.IsKeyJustPressed(k) {
			just = append(just, k)
		} else if ebiten.IsKeyPressed(k) {
			pressed = append(pressed, k)
		}
	}

	state := NewInputState(pressed, just)
	state.MouseX, state.MouseY = ebiten.CursorPosition()
	state.MouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.MouseLeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}
