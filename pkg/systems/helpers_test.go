package systems

import (
	"testing"
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/decker502/drcat/pkg/world"
)

var testViewport = config.Viewport{Width: 200, Height: 100}

// alwaysHigh 随机数恒为 99：漫游对象从不转向也从不原地停留
type alwaysHigh struct{}

func (alwaysHigh) Intn(n int) int { return (n - 1) % 100 }

// newAnim 单行 frames 帧、每帧 10x10 的动画
func newAnim(t *testing.T, path string, frames int) *components.AnimationComponent {
	t.Helper()
	sheet := &components.Sheet{Path: path, Width: 10 * frames, Height: 10}
	a, err := components.NewAnimation(sheet, 1, frames, components.GridFrames(1, frames, 0, false))
	if err != nil {
		t.Fatalf("NewAnimation failed: %v", err)
	}
	return a
}

// oneShot 单次播放、不可打断；未播放前保持停止
func oneShot(a *components.AnimationComponent, movable bool) *components.AnimationComponent {
	a.Looped = false
	a.Interruptable = false
	a.Movable = movable
	a.Ongoing = false
	return a
}

type fakeCues struct {
	sounds []string
	loops  []string
	fades  []string
}

func (c *fakeCues) PlaySound(path string) bool { c.sounds = append(c.sounds, path); return true }
func (c *fakeCues) StartLoop(path string) bool { c.loops = append(c.loops, path); return true }
func (c *fakeCues) FadeOut(path string, _ time.Duration) {
	c.fades = append(c.fades, path)
}

// testRig 200x100 视口中的世界，玩家 10x10 位于中心
//
// 玩家 Dst (95, 45)，命中盒为底部 1 像素 (95, 54, 10, 1)，位于层 1。
type testRig struct {
	em     *ecs.EntityManager
	world  *world.World
	char   world.Character
	keys   config.Keys
	cues   *fakeCues
	player *PlayerSystem
}

func newRig(t *testing.T) *testRig {
	t.Helper()
	em := ecs.NewEntityManager()

	base := components.NewSprite(newAnim(t, "map", 1), 0, 0, testViewport)
	base.W, base.H = 1000, 1000
	base.UpdateDst()
	base.GenHitbox(utils.Rect{})
	w := world.New(em, components.NewCompositeHitbox(base), components.NewSprite(newAnim(t, "indicator", 1), 0, 0, testViewport), 3, alwaysHigh{})

	sprite := components.NewSprite(newAnim(t, "standing", 2), 0, 0, testViewport)
	for _, dir := range []string{"left", "right", "up", "down"} {
		sprite.AddAnimation(newAnim(t, dir, 4))
	}
	sprite.AddAnimation(oneShot(newAnim(t, "death", 3), false))
	for _, dir := range []string{"dash_left", "dash_right", "dash_up", "dash_down"} {
		a := oneShot(newAnim(t, dir, 3), true)
		a.Duration = 20 * time.Millisecond
		sprite.AddAnimation(a)
	}
	sprite.AddAnimation(oneShot(newAnim(t, "attack", 3), false))
	sprite.AddAnimation(oneShot(newAnim(t, "attack_left", 3), false))
	sprite.GenHitbox(utils.NewRect(0, 9, 10, 1))
	sprite.Layer = 1

	cfg := config.DefaultGameConfig()
	state := components.NewCharacter(cfg.Movement)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, state)
	char := world.Character{ID: id, Sprite: sprite, State: state}

	for _, hud := range []struct {
		path string
		kind components.HUDKind
	}{{"heart", components.HUDHeart}, {"dash_hud", components.HUDDashCooldown}} {
		s := components.NewSprite(oneShot(newAnim(t, hud.path, 3), true), 0, 0, testViewport)
		hid := em.CreateEntity()
		ecs.AddComponent(em, hid, s)
		ecs.AddComponent(em, hid, &components.HUDComponent{Kind: hud.kind})
	}

	keys, err := cfg.Keys.Resolve()
	if err != nil {
		t.Fatalf("Resolve keys failed: %v", err)
	}
	cues := &fakeCues{}
	sound := SoundCues{Running: "run.mp3", Slash: "slash.mp3", RunningFadeOut: time.Second}

	return &testRig{
		em:     em,
		world:  w,
		char:   char,
		keys:   keys,
		cues:   cues,
		player: NewPlayerSystem(em, w, char, keys, cues, sound),
	}
}

// hud 指定种类的叠加层精灵
func (r *testRig) hud(kind components.HUDKind) *components.SpriteComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.HUDComponent](r.em) {
		h, _ := ecs.GetComponent[*components.HUDComponent](r.em, id)
		if h.Kind == kind {
			s, _ := ecs.GetComponent[*components.SpriteComponent](r.em, id)
			return s
		}
	}
	return nil
}

// spawnBlock 在 (x, y) 偏移处放置 10x10、命中盒等于 Dst 的静态物体
func (r *testRig) spawnBlock(t *testing.T, path string, x, y, layer int) *components.SpriteComponent {
	t.Helper()
	s := components.NewSprite(newAnim(t, path, 2), 0, 0, testViewport)
	s.OffsetX(x)
	s.OffsetY(y)
	s.Layer = layer
	if _, err := r.world.Spawn(components.ActorStatic, s); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	return s
}
