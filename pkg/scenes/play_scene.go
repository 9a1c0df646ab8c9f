package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/entities"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/systems"
	"github.com/decker502/drcat/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene 游戏场景
//
// 每 tick：玩家输入 → 动画推进 → 自主对象行为 → 交互检测 → 音效淡出。
// 绘制：背景色 → 世界 → 交互提示 → 叠加层。
type PlayScene struct {
	ctx *Context

	em    *ecs.EntityManager
	world *world.World
	char  world.Character

	player    *systems.PlayerSystem
	animation *systems.AnimationSystem
	interact  *systems.InteractionSystem
	render    *systems.RenderSystem

	// hue 背景色循环 (hue, 64, 255-hue)
	hue uint8
}

// DefaultActions 交互区域可引用的动作
func DefaultActions() entities.Actions {
	return entities.Actions{
		"log": func() bool {
			log.Printf("[PlayScene] Interaction triggered")
			return true
		},
	}
}

// NewPlayScene 根据配置构建世界、玩家与叠加层
func NewPlayScene(ctx *Context, actions entities.Actions) (*PlayScene, error) {
	cfg := ctx.Config
	em := ecs.NewEntityManager()

	w, err := entities.BuildWorld(em, ctx.Sheets, cfg, actions, ctx.Rng)
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	char, err := entities.NewCharacter(em, ctx.Sheets, cfg)
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	if err := entities.NewHUD(em, ctx.Sheets, cfg); err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}

	var cues systems.CuePlayer
	if ctx.Audio != nil {
		cues = ctx.Audio
	}
	player := systems.NewPlayerSystem(em, w, char, ctx.Keys, cues, systems.SoundCues{
		Running:        cfg.Assets.RunningSound,
		Slash:          cfg.Assets.SlashSound,
		RunningFadeOut: cfg.Assets.RunningFadeOut,
	})

	interact := systems.NewInteractionSystem(w, char, ctx.Keys.Interact)
	if ctx.Audio != nil && cfg.Assets.InteractSound != "" {
		interact.Subscribe(func(systems.InteractionEvent) {
			ctx.Audio.PlaySound(cfg.Assets.InteractSound)
		})
	}

	render := systems.NewRenderSystem(em, w, char)
	render.Debug = ctx.Debug

	log.Printf("[PlayScene] Ready: scroll (%d,%d), %d layers", w.X, w.Y, w.LayerCount())
	return &PlayScene{
		ctx:       ctx,
		em:        em,
		world:     w,
		char:      char,
		player:    player,
		animation: systems.NewAnimationSystem(em),
		interact:  interact,
		render:    render,
	}, nil
}

// World 场景中的世界
func (s *PlayScene) World() *world.World {
	return s.world
}

// Character 玩家角色
func (s *PlayScene) Character() world.Character {
	return s.char
}

// Update 推进一个 tick
func (s *PlayScene) Update(f game.Frame) error {
	s.player.Update(f.Now, f.Input)
	s.animation.Update(f.Now)
	s.world.DoBehaviours(s.char, f.Now)
	s.interact.Update(f.Now, f.Input)
	if s.ctx.Audio != nil {
		s.ctx.Audio.Update(f.Delta)
	}

	s.hue = (s.hue + 1) % 255
	return nil
}

// Draw 绘制背景与世界
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: s.hue, G: 64, B: 255 - s.hue, A: 255})
	if err := s.render.Draw(screen); err != nil {
		log.Printf("[PlayScene] Render error: %v", err)
	}
}

// Leave 离开场景时停止所有循环音效
func (s *PlayScene) Leave() {
	if s.ctx.Audio != nil {
		s.ctx.Audio.StopAll()
	}
}
