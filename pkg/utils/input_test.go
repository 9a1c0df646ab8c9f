package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputStateInitialState(t *testing.T) {
	var state InputState

	// 零值快照：没有任何按键
	if state.IsPressed(ebiten.KeyD) {
		t.Error("Expected zero-value state to report no pressed keys")
	}
	if state.IsJustPressed(ebiten.KeyD) {
		t.Error("Expected zero-value state to report no just-pressed keys")
	}
}

func TestNewInputState(t *testing.T) {
	state := NewInputState(
		[]ebiten.Key{ebiten.KeyD, ebiten.KeyShiftLeft},
		[]ebiten.Key{ebiten.KeyAltLeft},
	)

	if !state.IsPressed(ebiten.KeyD) || !state.IsPressed(ebiten.KeyShiftLeft) {
		t.Error("Expected held keys to be pressed")
	}
	if state.IsJustPressed(ebiten.KeyD) {
		t.Error("Held key should not be just-pressed")
	}

	// 刚按下的按键同时视为按下
	if !state.IsJustPressed(ebiten.KeyAltLeft) {
		t.Error("Expected AltLeft to be just-pressed")
	}
	if !state.IsPressed(ebiten.KeyAltLeft) {
		t.Error("Just-pressed key should also count as pressed")
	}

	if state.IsPressed(ebiten.KeyA) {
		t.Error("Unlisted key should not be pressed")
	}
}
