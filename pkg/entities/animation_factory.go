// Package entities 根据配置构建精灵、玩家、世界与叠加层
package entities

import (
	"fmt"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
)

// NewAnimation 按配置加载精灵表并创建动画
//
// 单次动画与 Held 动画初始处于停止状态（停在第 0 帧），需要显式 Play；
// 第一次播放时才从当前时间开始计时。
func NewAnimation(provider components.SheetProvider, cfg config.AnimationConfig) (*components.AnimationComponent, error) {
	sheet, err := provider.LoadSheet(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet: %w", err)
	}

	var frames []components.FrameCoord
	if len(cfg.Frames) > 0 {
		for _, f := range cfg.Frames {
			frames = append(frames, components.FrameCoord{Col: f.Col, Row: f.Row})
		}
	} else {
		frames = components.GridFrames(cfg.Rows, cfg.Cols, cfg.Count, cfg.Reverse)
	}
	if cfg.Override != nil && len(frames) > 0 {
		override := *cfg.Override
		frames[0].Override = &override
	}

	a, err := components.NewAnimation(sheet, cfg.Rows, cfg.Cols, frames)
	if err != nil {
		return nil, fmt.Errorf("animation %s: %w", cfg.Sheet, err)
	}

	if cfg.Duration > 0 {
		a.Duration = cfg.Duration
	}
	a.Looped = !cfg.OneShot
	a.Interruptable = !cfg.Uninterruptable
	a.Movable = !cfg.Immovable
	a.Ongoing = !cfg.OneShot && !cfg.Held
	return a, nil
}

// NewSprite 以 animations[0] 为槽位 0 创建精灵，其余按顺序追加
func NewSprite(provider components.SheetProvider, animations []config.AnimationConfig, x, y int, vp config.Viewport) (*components.SpriteComponent, error) {
	if len(animations) == 0 {
		return nil, fmt.Errorf("%w: sprite needs at least one animation", components.ErrEmptyFrames)
	}

	var sprite *components.SpriteComponent
	for i, cfg := range animations {
		a, err := NewAnimation(provider, cfg)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if sprite == nil {
			sprite = components.NewSprite(a, x, y, vp)
			continue
		}
		sprite.AddAnimation(a)
	}
	return sprite, nil
}

// scale 按比例缩放精灵；0 视为 1
func scale(s *components.SpriteComponent, w, h float64) {
	if w != 0 && w != 1 {
		s.MultW(w)
	}
	if h != 0 && h != 1 {
		s.MultH(h)
	}
}
