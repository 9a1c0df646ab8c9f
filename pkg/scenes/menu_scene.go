package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/entities"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuScene 开始菜单：视口中央一个按钮，点击后进入游戏
type MenuScene struct {
	ctx     *Context
	em      *ecs.EntityManager
	buttons *systems.ButtonSystem
}

// NewMenuScene 创建开始菜单
//
// 字体加载失败时按钮照常工作，只是不显示文字。
func NewMenuScene(ctx *Context) *MenuScene {
	cfg := ctx.Config

	var font *text.GoTextFace
	if ctx.Fonts != nil {
		var err error
		font, err = ctx.Fonts.LoadFont(cfg.Assets.Font, cfg.Assets.FontSize)
		if err != nil {
			log.Printf("[MenuScene] Failed to load font: %v", err)
		}
	}

	em := ecs.NewEntityManager()
	// 回调返回 false 表示离开菜单
	entities.NewMenuButton(em, font, cfg.Menu, cfg.Window.Viewport, func() bool { return false })

	return &MenuScene{
		ctx:     ctx,
		em:      em,
		buttons: systems.NewButtonSystem(em),
	}
}

// Update 处理按钮点击
func (s *MenuScene) Update(f game.Frame) error {
	stay, clicked := s.buttons.Update(f.Input)
	if clicked && !stay {
		s.ctx.Scenes.Goto(game.ScenePlay)
	}
	return nil
}

// Draw 绘制按钮
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.buttons.Draw(screen)
}
