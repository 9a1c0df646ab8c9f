package systems

import (
	"image/color"
	"log"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮背景颜色（按状态）
var buttonColors = map[components.UIState]color.RGBA{
	components.UINormal:   {R: 40, G: 40, B: 40, A: 200},
	components.UIHovered:  {R: 70, G: 70, B: 70, A: 220},
	components.UIClicked:  {R: 20, G: 20, B: 20, A: 255},
	components.UIDisabled: {R: 40, G: 40, B: 40, A: 90},
}

// ButtonSystem 更新按钮状态、执行点击回调并绘制按钮
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 根据鼠标更新所有按钮状态
//
// 鼠标左键在某个按钮内按下时执行其回调，返回回调结果；
// 同一帧最多执行一个按钮（按实体 ID 顺序）。
func (s *ButtonSystem) Update(input utils.InputState) (result bool, clicked bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		switch {
		case !button.Enabled:
			button.State = components.UIDisabled
		case !button.Check(input.MouseX, input.MouseY):
			button.State = components.UINormal
		case input.MouseLeft:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}

		if clicked {
			continue
		}
		if cb, ok := button.Exec(input); ok {
			result, clicked = cb(), true
			log.Printf("[ButtonSystem] Button %q returned %v", button.Label, result)
		}
	}
	return result, clicked
}

// Draw 绘制所有按钮：背景矩形加居中文字
func (s *ButtonSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		r := button.Hitbox

		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			buttonColors[button.State], false)

		if button.Font == nil || button.Label == "" {
			continue
		}
		cx, cy := r.Center()
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		// 文字缩放到按钮之内
		scale := labelScale(button.Label, button.Font, r)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(cx), float64(cy+button.LabelOffsetY))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, button.Label, button.Font, op)
	}
}

// labelScale 文字超出按钮时的缩小比例（不放大）
func labelScale(label string, face text.Face, r utils.Rect) float64 {
	w, h := text.Measure(label, face, 0)
	scale := 1.0
	if w > 0 {
		scale = min(scale, float64(r.W)/w)
	}
	if h > 0 {
		scale = min(scale, float64(r.H)/h)
	}
	return scale
}
