package components

import (
	"testing"

	"github.com/decker502/drcat/pkg/utils"
)

func TestDirectionSweep(t *testing.T) {
	base := utils.NewRect(10, 10, 4, 4)

	tests := []struct {
		dir  Direction
		want utils.Rect
	}{
		{Down, utils.NewRect(10, 10, 4, 7)},
		{Up, utils.NewRect(10, 7, 4, 7)},
		{Right, utils.NewRect(10, 10, 7, 4)},
		{Left, utils.NewRect(7, 10, 7, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Sweep(base, 3); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDirectionSlots(t *testing.T) {
	tests := []struct {
		dir      Direction
		slot     int
		dashSlot int
	}{
		{Left, 1, 6},
		{Right, 2, 7},
		{Up, 3, 8},
		{Down, 4, 9},
	}
	for _, tt := range tests {
		if tt.dir.Slot() != tt.slot || tt.dir.DashSlot() != tt.dashSlot {
			t.Errorf("%v: expected slots (%d, %d), got (%d, %d)",
				tt.dir, tt.slot, tt.dashSlot, tt.dir.Slot(), tt.dir.DashSlot())
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range AllDirections {
		dx, dy := d.Delta(5)
		r := d.Sweep(utils.NewRect(0, 0, 1, 1), 5)
		// 位移后的单位矩形必须落在扫掠区域内
		moved := utils.NewRect(dx, dy, 1, 1)
		if inter, ok := r.Intersection(moved); !ok || inter != moved {
			t.Errorf("%v: delta (%d, %d) escapes sweep %+v", d, dx, dy, r)
		}
	}
}
