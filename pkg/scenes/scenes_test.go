package scenes

import (
	"errors"
	"testing"
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/entities"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// anySheets 任何路径都返回 100x100 的精灵表（无图片）
type anySheets struct{}

func (anySheets) LoadSheet(path string) (*components.Sheet, error) {
	return &components.Sheet{Path: path, Width: 100, Height: 100}, nil
}

type fakeAudio struct {
	sounds  []string
	loops   []string
	fades   []string
	stopped int
}

func (a *fakeAudio) PlaySound(path string) bool { a.sounds = append(a.sounds, path); return true }
func (a *fakeAudio) StartLoop(path string) bool { a.loops = append(a.loops, path); return true }
func (a *fakeAudio) FadeOut(path string, _ time.Duration) {
	a.fades = append(a.fades, path)
}
func (a *fakeAudio) Update(float64) {}
func (a *fakeAudio) StopAll()       { a.stopped++ }

type neverTurn struct{}

func (neverTurn) Intn(n int) int { return n - 1 }

func newTestContext(t *testing.T) (*Context, *fakeAudio) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve keys: %v", err)
	}

	audio := &fakeAudio{}
	ctx := &Context{
		Config: cfg,
		Keys:   keys,
		Sheets: anySheets{},
		Audio:  audio,
		Scenes: game.NewSceneManager(),
		Rng:    neverTurn{},
	}
	Register(ctx, DefaultActions())
	return ctx, audio
}

// emptyWorld 去掉地图阻挡区域与所有对象，玩家可以自由移动
func emptyWorld(cfg *config.GameConfig) {
	cfg.World.Map.Hitboxes = nil
	cfg.World.Props = nil
	cfg.World.Animals = nil
	cfg.World.Enemies = nil
	cfg.World.Zones = nil
}

func frame(tick int, input utils.InputState) game.Frame {
	return game.Frame{Now: time.Duration(tick) * time.Second / 60, Delta: 1.0 / 60, Input: input}
}

func TestIntroFade(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Config.Window.FadeTicks = 4
	sm := ctx.Scenes

	if err := sm.Start(game.SceneIntro); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	_, scene := sm.Current()
	intro := scene.(*IntroScene)

	if intro.Shade() != 255 {
		t.Errorf("Expected white background at start, got %d", intro.Shade())
	}

	for i := 1; i <= 3; i++ {
		if err := sm.Update(frame(i, utils.InputState{})); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if id, _ := sm.Current(); id != game.SceneIntro {
			t.Fatalf("Expected intro after %d ticks, got %s", i, id)
		}
		if i == 2 && intro.Shade() != 127 {
			t.Errorf("Expected half faded shade 127, got %d", intro.Shade())
		}
	}

	if err := sm.Update(frame(4, utils.InputState{})); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if id, _ := sm.Current(); id != game.SceneMenu {
		t.Errorf("Expected menu after the fade, got %s", id)
	}
	if intro.Shade() != 0 {
		t.Errorf("Expected black background after the fade, got %d", intro.Shade())
	}
}

func TestMenuStartsGame(t *testing.T) {
	ctx, _ := newTestContext(t)
	sm := ctx.Scenes
	if err := sm.Start(game.SceneMenu); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// 1920x1080 视口中的 400x100 按钮: (760,490)-(1160,590)
	hover := utils.InputState{MouseX: 960, MouseY: 540}
	if err := sm.Update(frame(1, hover)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if id, _ := sm.Current(); id != game.SceneMenu {
		t.Fatalf("Expected to stay in menu while hovering, got %s", id)
	}

	outside := utils.InputState{MouseX: 10, MouseY: 10, MouseLeft: true}
	if err := sm.Update(frame(2, outside)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if id, _ := sm.Current(); id != game.SceneMenu {
		t.Fatalf("Expected to stay in menu after clicking outside, got %s", id)
	}

	click := utils.InputState{MouseX: 960, MouseY: 540, MouseLeft: true}
	if err := sm.Update(frame(3, click)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if id, _ := sm.Current(); id != game.ScenePlay {
		t.Errorf("Expected play scene after clicking the button, got %s", id)
	}
}

func TestPlaySceneBuild(t *testing.T) {
	ctx, _ := newTestContext(t)

	scene, err := NewPlayScene(ctx, DefaultActions())
	if err != nil {
		t.Fatalf("NewPlayScene() error: %v", err)
	}

	w := scene.World()
	if w.X != 5670 || w.Y != 370 {
		t.Errorf("Expected start scroll (5670,370), got (%d,%d)", w.X, w.Y)
	}
	if len(w.Zones()) != 1 {
		t.Errorf("Expected 1 interaction zone, got %d", len(w.Zones()))
	}
	if n := len(scene.Character().Sprite.Animations); n != 12 {
		t.Errorf("Expected 12 character slots, got %d", n)
	}

	if _, err := NewPlayScene(ctx, entities.Actions{}); !errors.Is(err, entities.ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction without the log action, got %v", err)
	}
}

func TestPlaySceneMovement(t *testing.T) {
	ctx, audio := newTestContext(t)
	emptyWorld(ctx.Config)

	scene, err := NewPlayScene(ctx, DefaultActions())
	if err != nil {
		t.Fatalf("NewPlayScene() error: %v", err)
	}

	right := utils.NewInputState([]ebiten.Key{ctx.Keys.Right}, nil)
	if err := scene.Update(frame(1, right)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	w := scene.World()
	if w.X != 5670-ctx.Config.Movement.BaseSpeed {
		t.Errorf("Expected world scrolled left by base speed, got X=%d", w.X)
	}
	if active := scene.Character().Sprite.Active; active != components.Right.Slot() {
		t.Errorf("Expected right animation slot, got %d", active)
	}
	if len(audio.loops) != 1 || audio.loops[0] != ctx.Config.Assets.RunningSound {
		t.Errorf("Expected running loop started, got %v", audio.loops)
	}

	if err := scene.Update(frame(2, utils.InputState{})); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if active := scene.Character().Sprite.Active; active != components.SlotStanding {
		t.Errorf("Expected standing after releasing keys, got %d", active)
	}
	if len(audio.fades) == 0 {
		t.Error("Expected running loop fade out when standing")
	}
	if scene.hue != 2 {
		t.Errorf("Expected background hue 2 after 2 ticks, got %d", scene.hue)
	}
}

func TestPlaySceneDeath(t *testing.T) {
	ctx, _ := newTestContext(t)
	emptyWorld(ctx.Config)

	scene, err := NewPlayScene(ctx, DefaultActions())
	if err != nil {
		t.Fatalf("NewPlayScene() error: %v", err)
	}

	death := utils.NewInputState([]ebiten.Key{ctx.Keys.Death}, nil)
	if err := scene.Update(frame(1, death)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if active := scene.Character().Sprite.Active; active != components.SlotDeath {
		t.Errorf("Expected death animation, got slot %d", active)
	}
}

func TestPlaySceneLeaveStopsAudio(t *testing.T) {
	ctx, audio := newTestContext(t)
	sm := ctx.Scenes

	if err := sm.Start(game.ScenePlay); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sm.Start(game.SceneMenu); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if audio.stopped != 1 {
		t.Errorf("Expected StopAll once when leaving play, got %d", audio.stopped)
	}
}
