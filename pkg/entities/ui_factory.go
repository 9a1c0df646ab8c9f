package entities

import (
	"fmt"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
)

// logoScale 开场标志相对原图的缩放
const logoScale = 0.5

// NewLogo 创建开场标志：缩小一半并居中
func NewLogo(em *ecs.EntityManager, provider components.SheetProvider, cfg *config.GameConfig) (ecs.EntityID, *components.SpriteComponent, error) {
	logo, err := NewSprite(provider, []config.AnimationConfig{cfg.Assets.Logo}, 0, 0, cfg.Window.Viewport)
	if err != nil {
		return ecs.InvalidEntity, nil, fmt.Errorf("failed to build logo: %w", err)
	}
	scale(logo, logoScale, logoScale)
	logo.Center()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, logo)
	return id, logo, nil
}
