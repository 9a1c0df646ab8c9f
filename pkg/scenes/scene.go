// Package scenes 开场、开始菜单与游戏场景
package scenes

import (
	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/entities"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/systems"
	"github.com/decker502/drcat/pkg/world"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontLoader 按路径与字号加载字体（*game.ResourceManager 满足）
type FontLoader interface {
	LoadFont(path string, size float64) (*text.GoTextFace, error)
}

// Audio 场景使用的音效接口（*game.AudioManager 满足）
type Audio interface {
	systems.CuePlayer
	Update(dt float64)
	StopAll()
}

// Context 场景共享的依赖
//
// 场景之间不互相引用，只通过 Scenes.Goto 按 ID 跳转。
type Context struct {
	Config *config.GameConfig
	Keys   config.Keys

	Sheets components.SheetProvider
	Fonts  FontLoader
	// Audio 可为 nil（无声运行）
	Audio Audio

	Scenes *game.SceneManager

	// Rng 漫游行为的随机数来源，nil 时使用 math/rand
	Rng world.Roller
	// Debug 绘制命中盒与调试信息
	Debug bool
}

// Register 向 ctx.Scenes 注册开场、菜单与游戏场景
func Register(ctx *Context, actions entities.Actions) {
	sm := ctx.Scenes
	sm.Register(game.SceneIntro, func() (game.Scene, error) {
		s, err := NewIntroScene(ctx)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	sm.Register(game.SceneMenu, func() (game.Scene, error) {
		return NewMenuScene(ctx), nil
	})
	sm.Register(game.ScenePlay, func() (game.Scene, error) {
		s, err := NewPlayScene(ctx, actions)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
