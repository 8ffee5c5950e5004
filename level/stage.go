package level

import "github.com/lixenwraith/reality-bender/vmath"

// Stage is the presentation-owned geometry of a running level
// The game core reads boxes from it and writes the entity position back
type Stage struct {
	level     *Level
	obstacles []vmath.Rect
	goal      vmath.Rect
	entity    vmath.Point
}

// NewStage validates the level and places the entity at its spawn
func NewStage(l *Level) (*Stage, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	obstacles := make([]vmath.Rect, len(l.Obstacles))
	for i, o := range l.Obstacles {
		obstacles[i] = o.Rect()
	}

	return &Stage{
		level:     l,
		obstacles: obstacles,
		goal:      l.Goal.Rect(),
		entity:    vmath.Point{X: l.Entity.StartX, Y: l.Entity.StartY},
	}, nil
}

// Name returns the level name
func (s *Stage) Name() string { return s.level.Name }

// Viewport returns the play area size in world units
func (s *Stage) Viewport() (float64, float64) {
	return s.level.Viewport.Width, s.level.Viewport.Height
}

// EntitySize returns the entity box size
func (s *Stage) EntitySize() (float64, float64) {
	return s.level.Entity.Width, s.level.Entity.Height
}

// Spawn returns the entity start position
func (s *Stage) Spawn() vmath.Point {
	return vmath.Point{X: s.level.Entity.StartX, Y: s.level.Entity.StartY}
}

// Obstacles returns obstacle boxes in level order
func (s *Stage) Obstacles() []vmath.Rect { return s.obstacles }

// Goal returns the goal box
func (s *Stage) Goal() vmath.Rect { return s.goal }

// SyncEntity records the rendered entity position
func (s *Stage) SyncEntity(x, y float64) {
	s.entity = vmath.Point{X: x, Y: y}
}

// EntityBox returns the box at the last synced position
func (s *Stage) EntityBox() vmath.Rect {
	return vmath.RectAt(s.entity, s.level.Entity.Width, s.level.Entity.Height)
}
