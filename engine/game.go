package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/input"
	"github.com/lixenwraith/reality-bender/physics"
	"github.com/lixenwraith/reality-bender/vmath"
)

// ErrNoGoal is returned when the surface exposes no goal box
var ErrNoGoal = errors.New("surface has no goal")

// Surface is the rendering surface: it owns geometry, the core reads boxes
// from it and writes the entity position back
type Surface interface {
	Viewport() (width, height float64)
	EntitySize() (width, height float64)
	Spawn() vmath.Point
	Obstacles() []vmath.Rect
	Goal() vmath.Rect
	EntityBox() vmath.Rect
	SyncEntity(x, y float64)
}

// Outcome is the terminal result of a session
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCollision
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCollision:
		return "collision"
	case OutcomeVictory:
		return "victory"
	}
	return "running"
}

// Config tunes a Game
type Config struct {
	Physics         physics.Params
	HistoryCapacity int
	SampleInterval  time.Duration
	Input           input.Options
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Physics:         physics.DefaultParams(),
		HistoryCapacity: constants.HistoryCapacity,
		SampleInterval:  constants.HistorySampleInterval,
		Input:           input.Options{ReleaseAfter: input.DefaultReleaseAfter},
	}
}

// Snapshot is a read-only copy of game state for presentation and metrics
type Snapshot struct {
	Frame      uint64
	Entity     physics.Entity
	Mode       ModeState
	Active     bool
	Outcome    Outcome
	HistoryLen int
	Sampling   bool
	Rewinding  bool
}

// Game owns the state of one session and advances it frame by frame
// Not safe for concurrent use: the loop goroutine is the only caller
type Game struct {
	surface Surface
	clock   Clock
	queue   *events.EventQueue
	cfg     Config

	entity  physics.Entity
	mode    ModeState
	history *PositionHistory
	input   *input.Tracker

	active  bool
	outcome Outcome
	frame   uint64

	sampler     Ticker
	rewinding   bool
	rewindSteps int
}

// NewGame creates a session with the entity at the surface spawn point
// Missing geometry is a setup error reported here, never during the loop
func NewGame(surface Surface, clock Clock, queue *events.EventQueue, cfg Config) (*Game, error) {
	if surface.Goal().Empty() {
		return nil, ErrNoGoal
	}
	w, h := surface.Viewport()
	ew, eh := surface.EntitySize()
	if ew <= 0 || eh <= 0 || w < ew || h < eh {
		return nil, fmt.Errorf("invalid geometry: viewport %vx%v, entity %vx%v", w, h, ew, eh)
	}
	if cfg.SampleInterval <= 0 {
		cfg.SampleInterval = constants.HistorySampleInterval
	}

	spawn := surface.Spawn()
	g := &Game{
		surface: surface,
		clock:   clock,
		queue:   queue,
		cfg:     cfg,
		entity:  physics.Entity{X: spawn.X, Y: spawn.Y},
		mode:    NewModeState(),
		history: NewPositionHistory(cfg.HistoryCapacity),
		active:  true,
	}

	opts := cfg.Input
	userCue := opts.OnMovement
	opts.OnMovement = func(k input.Key) {
		g.emit(events.EventKeyPressed, &events.KeyPressedPayload{Key: string(k)})
		if userCue != nil {
			userCue(k)
		}
	}
	g.input = input.NewTracker(g, opts)

	surface.SyncEntity(g.entity.X, g.entity.Y)
	return g, nil
}

// Input returns the key state tracker
func (g *Game) Input() *input.Tracker { return g.input }

// Active reports whether the session is still running
func (g *Game) Active() bool { return g.active }

// Outcome returns the terminal outcome, OutcomeNone while active
func (g *Game) Outcome() Outcome { return g.outcome }

// Entity returns a copy of the entity state
func (g *Game) Entity() physics.Entity { return g.entity }

// Mode returns a copy of the mode state
func (g *Game) Mode() ModeState { return g.mode }

// History exposes the position history
func (g *Game) History() *PositionHistory { return g.history }

// Snapshot copies the state for readers outside the loop
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:      g.frame,
		Entity:     g.entity,
		Mode:       g.mode,
		Active:     g.active,
		Outcome:    g.outcome,
		HistoryLen: g.history.Len(),
		Sampling:   g.sampler != nil,
		Rewinding:  g.rewinding,
	}
}

// ===== MODE TOGGLES =====
// Called by the input tracker on g/d/t key-down. Ignored after a terminal outcome.

// ToggleGravity flips gravity direction
func (g *Game) ToggleGravity() {
	if !g.active {
		return
	}
	dir := g.mode.FlipGravity()
	g.emit(events.EventGravityToggled, &events.GravityPayload{Direction: dir})
}

// ShiftDimension advances the dimension
func (g *Game) ShiftDimension() {
	if !g.active {
		return
	}
	dim := g.mode.NextDimension()
	g.emit(events.EventDimensionShifted, &events.DimensionPayload{Dimension: dim})
}

// ToggleTime flips time reversal
// On: clear history, start sampling. Off: stop sampling, start rewind.
func (g *Game) ToggleTime() {
	if !g.active {
		return
	}
	if g.mode.FlipTime() {
		g.history.Clear()
		g.rewinding = false
		g.rewindSteps = 0
		g.startSampler()
	} else {
		g.stopSampler()
		g.rewinding = true
	}
	g.emit(events.EventTimeToggled, &events.TimePayload{Reversed: g.mode.TimeReversed})
}

// ===== SAMPLING =====

// SampleC returns the sampling ticker channel, nil when not sampling
// A nil channel blocks forever in select, disabling that case
func (g *Game) SampleC() <-chan time.Time {
	if g.sampler == nil {
		return nil
	}
	return g.sampler.C()
}

// Sample records the current position while time is reversed
func (g *Game) Sample() {
	if !g.mode.TimeReversed {
		return
	}
	g.history.Record(g.entity.Position())
}

// Stop releases the sampling ticker
func (g *Game) Stop() {
	g.stopSampler()
}

func (g *Game) startSampler() {
	g.stopSampler()
	g.sampler = g.clock.NewTicker(g.cfg.SampleInterval)
}

func (g *Game) stopSampler() {
	if g.sampler != nil {
		g.sampler.Stop()
		g.sampler = nil
	}
}

// ===== FRAME =====

// Frame runs one scheduled frame: physics, position sync, collision, then
// one rewind step. Rewind is not a pause: both write the position each frame.
func (g *Game) Frame() {
	g.frame++

	if g.active {
		g.step()
	}

	if g.rewinding {
		g.rewindStep()
	}
}

func (g *Game) step() {
	w, h := g.surface.Viewport()
	ew, eh := g.surface.EntitySize()
	bounds := physics.Bounds{Width: w, Height: h, EntityWidth: ew, EntityHeight: eh}

	physics.Integrate(&g.entity, g.mode.GravityDirection, g.input.Controls(), bounds, g.cfg.Physics)
	g.surface.SyncEntity(g.entity.X, g.entity.Y)
	g.checkCollisions()
}

// checkCollisions applies obstacle contact before goal contact
// A same-frame tie ends in collision: the goal check runs but finds the game inactive
func (g *Game) checkCollisions() {
	contact := physics.Resolve(g.surface.EntityBox(), g.surface.Obstacles(), g.surface.Goal())

	if contact.Hit() {
		g.handleCollision(contact.Obstacle)
	}
	if contact.Goal {
		g.handleVictory()
	}
}

func (g *Game) handleCollision(obstacle int) {
	if !g.active {
		return
	}
	g.terminate(OutcomeCollision)
	g.emit(events.EventCollision, &events.CollisionPayload{Obstacle: obstacle, X: g.entity.X, Y: g.entity.Y})
}

func (g *Game) handleVictory() {
	if !g.active {
		return
	}
	g.terminate(OutcomeVictory)
	g.emit(events.EventVictory, &events.VictoryPayload{Dimension: g.mode.Dimension})
}

func (g *Game) terminate(o Outcome) {
	g.active = false
	g.outcome = o
	g.stopSampler()
}

// rewindStep replays the newest recorded position, or ends the rewind when drained
func (g *Game) rewindStep() {
	p, ok := g.history.PopNewest()
	if !ok {
		g.rewinding = false
		g.emit(events.EventRewindFinished, &events.RewindPayload{Steps: g.rewindSteps})
		g.rewindSteps = 0
		return
	}
	g.entity.X, g.entity.Y = p.X, p.Y
	g.rewindSteps++
}

func (g *Game) emit(t events.EventType, payload any) {
	if g.queue == nil {
		return
	}
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.clock.Now(),
	})
}
