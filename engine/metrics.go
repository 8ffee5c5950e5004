package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/status"
)

// Metrics publishes game state into a status registry
// Pointers are cached at construction; Publish only stores atomics
type Metrics struct {
	frames    *atomic.Int64
	x, y      *status.AtomicFloat
	velocity  *status.AtomicFloat
	gravity   *atomic.Int64
	dimension *atomic.Int64
	history   *atomic.Int64
	active    *atomic.Bool
	reversed  *atomic.Bool
	rewinding *atomic.Bool
	outcome   *status.AtomicString

	reg *status.Registry
}

// NewMetrics registers the game metrics in reg
func NewMetrics(reg *status.Registry) *Metrics {
	return &Metrics{
		frames:    reg.Ints.Get("engine.frames"),
		x:         reg.Floats.Get("entity.x"),
		y:         reg.Floats.Get("entity.y"),
		velocity:  reg.Floats.Get("entity.velocity"),
		gravity:   reg.Ints.Get("mode.gravity"),
		dimension: reg.Ints.Get("mode.dimension"),
		history:   reg.Ints.Get("history.len"),
		active:    reg.Bools.Get("game.active"),
		reversed:  reg.Bools.Get("mode.time_reversed"),
		rewinding: reg.Bools.Get("history.rewinding"),
		outcome:   reg.Strings.Get("game.outcome"),
		reg:       reg,
	}
}

// Publish stores a snapshot
func (m *Metrics) Publish(s Snapshot) {
	m.frames.Store(int64(s.Frame))
	m.x.Store(s.Entity.X)
	m.y.Store(s.Entity.Y)
	m.velocity.Store(s.Entity.Velocity)
	m.gravity.Store(int64(s.Mode.GravityDirection))
	m.dimension.Store(int64(s.Mode.Dimension))
	m.history.Store(int64(s.HistoryLen))
	m.active.Store(s.Active)
	m.reversed.Store(s.Mode.TimeReversed)
	m.rewinding.Store(s.Rewinding)
	m.outcome.Store(s.Outcome.String())
}

// HandleEvent counts events per type
func (m *Metrics) HandleEvent(ev events.GameEvent) {
	m.reg.Ints.Get("events." + ev.Type.String()).Add(1)
}

// EventTypes subscribes to every event
func (m *Metrics) EventTypes() []events.EventType {
	return events.AllTypes()
}
