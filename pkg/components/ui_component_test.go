package components

import (
	"testing"

	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
	}{
		{"UINormal should be 0", UINormal, 0},
		{"UIHovered should be 1", UIHovered, 1},
		{"UIClicked should be 2", UIClicked, 2},
		{"UIDisabled should be 3", UIDisabled, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
		})
	}
}

func TestButtonCentredAndClick(t *testing.T) {
	b := NewButton(40, 20, "start", func() bool { return false }, testViewport)

	if b.Hitbox != utils.NewRect(80, 40, 40, 20) {
		t.Fatalf("Expected centred hitbox, got %+v", b.Hitbox)
	}

	tests := []struct {
		name   string
		x, y   int
		left   bool
		wantOk bool
	}{
		{"click inside", 100, 50, true, true},
		{"hover without click", 100, 50, false, false},
		{"click outside", 10, 10, true, false},
		{"right edge exclusive", 120, 50, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := utils.NewInputState(nil, []ebiten.Key{})
			input.MouseX, input.MouseY, input.MouseLeft = tt.x, tt.y, tt.left

			cb, ok := b.Exec(input)
			if ok != tt.wantOk {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOk, ok)
			}
			if ok && cb() {
				t.Error("Expected callback result false")
			}
		})
	}
}

func TestButtonDisabled(t *testing.T) {
	b := NewButton(40, 20, "start", func() bool { return true }, testViewport)
	b.Enabled = false

	input := utils.InputState{MouseX: 100, MouseY: 50, MouseLeft: true}
	if _, ok := b.Exec(input); ok {
		t.Error("Disabled button should not fire")
	}
}
