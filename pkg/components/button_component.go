package components

import (
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 菜单按钮
//
// 鼠标左键在按钮区域内按下时执行 OnClick。
// OnClick 的返回值交给调用方解释（开始菜单中 false 表示离开菜单）。
type ButtonComponent struct {
	// Hitbox 屏幕矩形
	Hitbox utils.Rect

	// Label 按钮文字
	Label string
	// Font 文字字体，为 nil 时不绘制文字
	Font *text.GoTextFace
	// LabelOffsetY 文字相对按钮中心的垂直偏移
	LabelOffsetY int

	// State 当前交互状态
	State UIState
	// Enabled 是否启用
	Enabled bool

	OnClick func() bool
}

// NewButton 创建居中的按钮
func NewButton(w, h int, label string, onClick func() bool, vp config.Viewport) *ButtonComponent {
	b := &ButtonComponent{
		Hitbox:  utils.NewRect(0, 0, w, h),
		Label:   label,
		Enabled: true,
		OnClick: onClick,
	}
	b.Center(vp)
	return b
}

// Center 把按钮放到视口正中
func (b *ButtonComponent) Center(vp config.Viewport) {
	b.Hitbox.X, b.Hitbox.Y = vp.CenterOrigin(b.Hitbox.W, b.Hitbox.H)
}

// Check 鼠标是否位于按钮内
func (b *ButtonComponent) Check(mouseX, mouseY int) bool {
	return b.Hitbox.ContainsPoint(mouseX, mouseY)
}

// Exec 鼠标左键在按钮内按下时返回回调
func (b *ButtonComponent) Exec(input utils.InputState) (func() bool, bool) {
	if !b.Enabled || b.OnClick == nil {
		return nil, false
	}
	if b.Check(input.MouseX, input.MouseY) && input.MouseLeft {
		return b.OnClick, true
	}
	return nil, false
}
