package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/entities"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// IntroScene 开场：背景由白渐变到黑，中间显示标志，结束后进入开始菜单
//
// 渐变以 tick 为单位推进，持续 Window.FadeTicks 个 tick。
type IntroScene struct {
	ctx  *Context
	logo *components.SpriteComponent

	fade  *gween.Tween
	shade float32
	done  bool
}

// NewIntroScene 创建开场场景
func NewIntroScene(ctx *Context) (*IntroScene, error) {
	_, logo, err := entities.NewLogo(ecs.NewEntityManager(), ctx.Sheets, ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("intro: %w", err)
	}

	ticks := ctx.Config.Window.FadeTicks
	if ticks <= 0 {
		ticks = config.DefaultFadeTicks
	}

	return &IntroScene{
		ctx:   ctx,
		logo:  logo,
		fade:  gween.New(255, 0, float32(ticks), ease.Linear),
		shade: 255,
	}, nil
}

// Shade 当前背景灰度
func (s *IntroScene) Shade() uint8 {
	return uint8(max(0, min(255, s.shade)))
}

// Update 推进一个 tick 的渐变
func (s *IntroScene) Update(f game.Frame) error {
	if s.done {
		return nil
	}

	var finished bool
	s.shade, finished = s.fade.Update(1)
	if finished {
		s.done = true
		log.Printf("[IntroScene] Fade finished")
		s.ctx.Scenes.Goto(game.SceneMenu)
	}
	return nil
}

// Draw 绘制背景与标志
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Gray{Y: s.Shade()})
	if err := s.logo.Present(systems.ScreenSink{Screen: screen}, 0, 0); err != nil {
		log.Printf("[IntroScene] Failed to draw logo: %v", err)
	}
}
