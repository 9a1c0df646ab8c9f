package entities

import (
	"log"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewMenuButton 创建居中的菜单按钮实体
//
// 参数：
//   - em: 实体管理器
//   - font: 按钮文字字体，可为 nil（不绘制文字）
//   - mc: 菜单配置（按钮尺寸、文字、文字偏移）
//   - vp: 视口尺寸
//   - onClick: 点击回调，返回值由菜单场景解释
//
// 返回：
//   - 按钮实体ID
func NewMenuButton(em *ecs.EntityManager, font *text.GoTextFace, mc config.MenuConfig, vp config.Viewport, onClick func() bool) ecs.EntityID {
	button := components.NewButton(mc.ButtonWidth, mc.ButtonHeight, mc.Label, onClick, vp)
	button.Font = font
	button.LabelOffsetY = mc.LabelOffsetY

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, button)

	log.Printf("[ButtonFactory] Created menu button %d %q at %v", entity, mc.Label, button.Hitbox)
	return entity
}
