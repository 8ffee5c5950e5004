package physics

import "github.com/lixenwraith/reality-bender/vmath"

// Contact is the result of one frame of collision checks
type Contact struct {
	// Obstacle is the index of the first overlapping obstacle, -1 if none
	Obstacle int

	// Goal reports overlap with the goal box, evaluated after the obstacles
	Goal bool
}

// Hit reports an obstacle overlap
func (c Contact) Hit() bool { return c.Obstacle >= 0 }

// Resolve tests the entity box against every obstacle in order, then the goal
// The goal is always evaluated so callers can apply obstacle-first tie breaking
func Resolve(entity vmath.Rect, obstacles []vmath.Rect, goal vmath.Rect) Contact {
	return Contact{
		Obstacle: vmath.FirstOverlap(entity, obstacles),
		Goal:     !goal.Empty() && vmath.Overlaps(entity, goal),
	}
}
