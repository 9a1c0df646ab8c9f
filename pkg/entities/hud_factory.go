package entities

import (
	"fmt"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
)

// NewHUD 创建屏幕叠加层：左上角的生命值与右上角的冲刺冷却
//
// 叠加层精灵的坐标相对视口中心，不随世界滚动。
func NewHUD(em *ecs.EntityManager, provider components.SheetProvider, cfg *config.GameConfig) error {
	hc := cfg.HUD
	vp := cfg.Window.Viewport

	for i := 0; i < hc.HeartCount; i++ {
		x := -vp.Width/2 + hc.HeartMargin + i*hc.HeartSpacing
		y := -vp.Height/2 + hc.HeartMargin
		heart, err := NewSprite(provider, []config.AnimationConfig{hc.Heart}, x, y, vp)
		if err != nil {
			return fmt.Errorf("failed to build heart %d: %w", i, err)
		}
		if hc.HeartSize > 0 {
			heart.W, heart.H = hc.HeartSize, hc.HeartSize
			heart.UpdateDst()
		}
		addHUD(em, heart, components.HUDHeart)
	}

	dash, err := NewSprite(provider, []config.AnimationConfig{hc.Dash}, vp.Width/2-hc.DashOffsetX, -vp.Height/2+hc.DashOffsetY, vp)
	if err != nil {
		return fmt.Errorf("failed to build dash indicator: %w", err)
	}
	if hc.DashScale > 0 {
		scale(dash, float64(hc.DashScale), float64(hc.DashScale))
	}
	addHUD(em, dash, components.HUDDashCooldown)
	return nil
}

func addHUD(em *ecs.EntityManager, sprite *components.SpriteComponent, kind components.HUDKind) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.HUDComponent{Kind: kind})
	return id
}
