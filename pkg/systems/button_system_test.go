package systems

import (
	"testing"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
)

func TestButtonSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	calls := 0
	// 视口 200x100 中居中的 40x20 按钮: (80, 40)-(120, 60)
	button := components.NewButton(40, 20, "start", func() bool { calls++; return false }, testViewport)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, button)

	s := NewButtonSystem(em)

	tests := []struct {
		name        string
		input       utils.InputState
		wantState   components.UIState
		wantClicked bool
	}{
		{"outside", utils.InputState{MouseX: 10, MouseY: 10, MouseLeft: true}, components.UINormal, false},
		{"hover", utils.InputState{MouseX: 100, MouseY: 50}, components.UIHovered, false},
		{"click", utils.InputState{MouseX: 100, MouseY: 50, MouseLeft: true}, components.UIClicked, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, clicked := s.Update(tt.input)
			if clicked != tt.wantClicked {
				t.Errorf("Expected clicked=%v, got %v", tt.wantClicked, clicked)
			}
			if clicked && result {
				t.Error("Expected the callback result false")
			}
			if button.State != tt.wantState {
				t.Errorf("Expected state %v, got %v", tt.wantState, button.State)
			}
		})
	}

	if calls != 1 {
		t.Errorf("Expected callback once, got %d", calls)
	}
}

func TestButtonSystemDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	button := components.NewButton(40, 20, "start", func() bool { return true }, testViewport)
	button.Enabled = false
	ecs.AddComponent(em, em.CreateEntity(), button)

	_, clicked := NewButtonSystem(em).Update(utils.InputState{MouseX: 100, MouseY: 50, MouseLeft: true})
	if clicked {
		t.Error("Expected disabled button to ignore clicks")
	}
	if button.State != components.UIDisabled {
		t.Errorf("Expected disabled state, got %v", button.State)
	}
}
