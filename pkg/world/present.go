package world

import (
	"fmt"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
)

// Present 从后往前绘制世界：地图、各层对象，玩家插入到其所在层之前
func (w *World) Present(sink components.RenderSink, char Character) error {
	if w.Map != nil {
		if err := w.Map.Base.Present(sink, w.X, w.Y); err != nil {
			return fmt.Errorf("failed to present map: %w", err)
		}
	}

	drawn := false
	for i, layer := range w.layers {
		if char.Sprite.Layer == i {
			if err := char.Sprite.Present(sink, 0, 0); err != nil {
				return fmt.Errorf("failed to present character: %w", err)
			}
			drawn = true
		}
		for _, id := range layer {
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](w.em, id)
			if !ok {
				continue
			}
			if err := sprite.Present(sink, w.X, w.Y); err != nil {
				return fmt.Errorf("failed to present entity %d: %w", id, err)
			}
		}
	}

	if !drawn {
		return char.Sprite.Present(sink, 0, 0)
	}
	return nil
}

// PresentIndicators 在玩家所处的每个交互区域中心绘制提示精灵
func (w *World) PresentIndicators(sink components.RenderSink, char Character) error {
	if w.Indicator == nil {
		return nil
	}
	for _, i := range w.ActiveZones(char) {
		cx, cy := w.zones[i].Hitbox.Translate(w.X, w.Y).Center()
		ind := w.Indicator
		dx := cx - (ind.Dst.X + ind.W/2)
		dy := cy - (ind.Dst.Y + ind.H/2)
		if err := ind.Present(sink, dx, dy); err != nil {
			return fmt.Errorf("failed to present indicator: %w", err)
		}
	}
	return nil
}
