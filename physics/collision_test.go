package physics

import (
	"testing"

	"github.com/lixenwraith/reality-bender/vmath"
)

func TestResolve(t *testing.T) {
	obstacles := []vmath.Rect{
		{X: 300, Y: 500, Width: 40, Height: 100},
		{X: 100, Y: 100, Width: 50, Height: 50},
		{X: 110, Y: 110, Width: 50, Height: 50},
	}
	goal := vmath.Rect{X: 700, Y: 500, Width: 60, Height: 60}

	tests := []struct {
		name     string
		entity   vmath.Rect
		obstacle int
		goal     bool
	}{
		{"clear", vmath.Rect{X: 0, Y: 0, Width: 30, Height: 30}, -1, false},
		{"first in order wins", vmath.Rect{X: 120, Y: 120, Width: 30, Height: 30}, 1, false},
		{"goal only", vmath.Rect{X: 710, Y: 510, Width: 30, Height: 30}, -1, true},
		{"touching goal edge", vmath.Rect{X: 670, Y: 470, Width: 30, Height: 30}, -1, true},
		{"both", vmath.Rect{X: 330, Y: 540, Width: 400, Height: 30}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Resolve(tt.entity, obstacles, goal)
			if c.Obstacle != tt.obstacle {
				t.Errorf("Expected obstacle %d, got %d", tt.obstacle, c.Obstacle)
			}
			if c.Goal != tt.goal {
				t.Errorf("Expected goal %v, got %v", tt.goal, c.Goal)
			}
			if c.Hit() != (tt.obstacle >= 0) {
				t.Errorf("Hit() inconsistent with obstacle index")
			}
		})
	}
}

// TestResolveEmptyGoal verifies an empty goal box never triggers
func TestResolveEmptyGoal(t *testing.T) {
	c := Resolve(vmath.Rect{Width: 30, Height: 30}, nil, vmath.Rect{})
	if c.Goal || c.Hit() {
		t.Errorf("Expected no contact, got %+v", c)
	}
}
