package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/vmath"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeSurface is a fixed 800x600 stage with a 30x30 entity
type fakeSurface struct {
	width, height float64
	spawn         vmath.Point
	obstacles     []vmath.Rect
	goal          vmath.Rect
	entity        vmath.Point
	syncs         int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		width:  800,
		height: 600,
		spawn:  vmath.Point{X: 50, Y: 50},
		goal:   vmath.Rect{X: 740, Y: 540, Width: 60, Height: 60},
	}
}

func (s *fakeSurface) Viewport() (float64, float64)   { return s.width, s.height }
func (s *fakeSurface) EntitySize() (float64, float64) { return 30, 30 }
func (s *fakeSurface) Spawn() vmath.Point             { return s.spawn }
func (s *fakeSurface) Obstacles() []vmath.Rect        { return s.obstacles }
func (s *fakeSurface) Goal() vmath.Rect               { return s.goal }
func (s *fakeSurface) EntityBox() vmath.Rect          { return vmath.RectAt(s.entity, 30, 30) }
func (s *fakeSurface) SyncEntity(x, y float64) {
	s.entity = vmath.Point{X: x, Y: y}
	s.syncs++
}

type gameFixture struct {
	game    *Game
	surface *fakeSurface
	clock   *MockClock
	queue   *events.EventQueue
}

func newFixture(t *testing.T, surface *fakeSurface) *gameFixture {
	t.Helper()
	clock := NewMockClock(testStart)
	queue := events.NewEventQueue(0)
	cfg := DefaultConfig()
	g, err := NewGame(surface, clock, queue, cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return &gameFixture{game: g, surface: surface, clock: clock, queue: queue}
}

// eventTypes drains the queue and returns the event types in order
func (f *gameFixture) eventTypes() []events.EventType {
	var out []events.EventType
	for _, ev := range f.queue.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func countType(types []events.EventType, want events.EventType) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}
