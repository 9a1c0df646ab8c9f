package systems

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/decker502/drcat/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoImage 精灵表没有可绘制的图片
var ErrNoImage = errors.New("sheet has no image")

// ScreenSink 把绘制请求转换为 ebiten 的 DrawImage
//
// 源矩形通过 SubImage 截取，按目标矩形尺寸缩放后平移到目标位置。
type ScreenSink struct {
	Screen *ebiten.Image
}

// Blit 实现 components.RenderSink
func (s ScreenSink) Blit(sheet *components.Sheet, src, dst utils.Rect) error {
	if sheet == nil || sheet.Image == nil {
		return ErrNoImage
	}
	if src.Empty() || dst.Empty() {
		return nil
	}

	sub, ok := sheet.Image.SubImage(src.Image()).(*ebiten.Image)
	if !ok {
		return fmt.Errorf("failed to crop %s", sheet.Path)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	s.Screen.DrawImage(sub, op)
	return nil
}

// 调试描边颜色
var (
	debugCharColor  = color.RGBA{R: 255, A: 255}
	debugActorColor = color.RGBA{G: 255, A: 255}
	debugMapColor   = color.RGBA{B: 255, A: 255}
	debugZoneColor  = color.RGBA{R: 255, G: 255, A: 255}
)

// RenderSystem 绘制世界、交互提示与屏幕叠加层
//
// 绘制顺序：地图 → 各层对象（玩家插入其所在层）→ 交互提示 → 叠加层。
// Debug 打开时额外描出所有命中盒并显示滚动量与玩家层。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	world         *world.World
	char          world.Character

	Debug bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, w *world.World, char world.Character) *RenderSystem {
	return &RenderSystem{entityManager: em, world: w, char: char}
}

// Present 把一帧绘制到 sink
func (s *RenderSystem) Present(sink components.RenderSink) error {
	if err := s.world.Present(sink, s.char); err != nil {
		return err
	}
	if err := s.world.PresentIndicators(sink, s.char); err != nil {
		return err
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HUDComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if err := sprite.Present(sink, 0, 0); err != nil {
			return fmt.Errorf("failed to present HUD entity %d: %w", id, err)
		}
	}
	return nil
}

// Draw 绘制到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) error {
	if err := s.Present(ScreenSink{Screen: screen}); err != nil {
		return err
	}
	if s.Debug {
		s.drawDebug(screen)
	}
	return nil
}

func (s *RenderSystem) drawDebug(screen *ebiten.Image) {
	w := s.world

	if w.Map != nil {
		for _, r := range w.Map.Real {
			strokeRect(screen, r.Translate(w.X, w.Y), debugMapColor)
		}
	}
	w.Each(func(_ ecs.EntityID, _ *components.ActorComponent, sprite *components.SpriteComponent) bool {
		strokeRect(screen, sprite.WorldHitbox(w.X, w.Y), debugActorColor)
		return true
	})
	for _, z := range w.Zones() {
		strokeRect(screen, z.Hitbox.Translate(w.X, w.Y), debugZoneColor)
	}
	strokeRect(screen, s.char.Sprite.Hitbox, debugCharColor)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  scroll: (%d, %d)  layer: %d  speed: %d",
		ebiten.ActualTPS(), w.X, w.Y, s.char.Sprite.Layer, s.char.State.Speed))
}

func strokeRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
