package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/input"
	"github.com/lixenwraith/reality-bender/vmath"
)

// TestNewGameRejectsMissingGoal verifies missing geometry fails at setup
func TestNewGameRejectsMissingGoal(t *testing.T) {
	s := newFakeSurface()
	s.goal = vmath.Rect{}
	_, err := NewGame(s, NewMockClock(testStart), nil, DefaultConfig())
	if !errors.Is(err, ErrNoGoal) {
		t.Errorf("Expected ErrNoGoal, got %v", err)
	}

	s = newFakeSurface()
	s.width = 20
	if _, err := NewGame(s, NewMockClock(testStart), nil, DefaultConfig()); err == nil {
		t.Error("Expected error for viewport narrower than entity")
	}
}

// TestNewGameInitialState verifies spawn position, modes and initial sync
func TestNewGameInitialState(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	snap := f.game.Snapshot()

	if snap.Entity.X != 50 || snap.Entity.Y != 50 || snap.Entity.Velocity != 0 {
		t.Errorf("Expected entity (50,50,0), got %+v", snap.Entity)
	}
	if snap.Mode != NewModeState() {
		t.Errorf("Expected initial mode state, got %+v", snap.Mode)
	}
	if !snap.Active || snap.Outcome != OutcomeNone {
		t.Error("Expected active session with no outcome")
	}
	if f.surface.syncs != 1 || f.surface.entity.X != 50 {
		t.Errorf("Expected spawn synced once, got %d syncs at %v", f.surface.syncs, f.surface.entity)
	}
}

// TestFrameRightHeld verifies the reference single step and position sync
func TestFrameRightHeld(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	f.game.Input().KeyDown(input.ArrowRight, testStart)
	f.game.Frame()

	e := f.game.Entity()
	if e.X != 55 || e.Y != 50.5 || e.Velocity != 0.5 {
		t.Errorf("Expected (55, 50.5, 0.5), got (%v, %v, %v)", e.X, e.Y, e.Velocity)
	}
	if f.surface.entity.X != 55 || f.surface.entity.Y != 50.5 {
		t.Errorf("Expected surface synced to (55, 50.5), got %v", f.surface.entity)
	}

	types := f.eventTypes()
	if countType(types, events.EventKeyPressed) != 1 {
		t.Errorf("Expected one key press cue, got %v", types)
	}
}

// TestFrameJumpSetsVelocity verifies up held overrides velocity with gravity down
func TestFrameJumpSetsVelocity(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	for i := 0; i < 10; i++ {
		f.game.Frame()
	}
	f.game.Input().KeyDown(input.ArrowUp, testStart)
	f.game.Frame()

	if v := f.game.Entity().Velocity; v != -12 {
		t.Errorf("Expected velocity -12, got %v", v)
	}
}

// TestInvertedGravityJump verifies down jumps after gravity toggle
func TestInvertedGravityJump(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	f.game.Input().KeyDown(input.KeyGravity, testStart)
	f.game.Input().KeyDown(input.ArrowDown, testStart)
	f.game.Frame()

	if v := f.game.Entity().Velocity; v != 12 {
		t.Errorf("Expected velocity 12 with inverted gravity, got %v", v)
	}
}

// TestModeKeysEmitEvents verifies toggles emit their notifications with payloads
func TestModeKeysEmitEvents(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	tr := f.game.Input()
	tr.KeyDown(input.KeyGravity, testStart)
	tr.KeyDown(input.KeyDimension, testStart)

	evs := f.queue.Consume()
	if len(evs) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(evs))
	}
	if p, ok := evs[0].Payload.(*events.GravityPayload); !ok || p.Direction != -1 {
		t.Errorf("Expected gravity payload -1, got %+v", evs[0].Payload)
	}
	if p, ok := evs[1].Payload.(*events.DimensionPayload); !ok || p.Dimension != 2 {
		t.Errorf("Expected dimension payload 2, got %+v", evs[1].Payload)
	}
	if !evs[0].Timestamp.Equal(testStart) {
		t.Errorf("Expected event timestamp from clock, got %v", evs[0].Timestamp)
	}
}

// TestCollisionBeatsGoalSameFrame verifies obstacle-first tie breaking
func TestCollisionBeatsGoalSameFrame(t *testing.T) {
	s := newFakeSurface()
	s.obstacles = []vmath.Rect{{X: 40, Y: 40, Width: 50, Height: 50}}
	s.goal = vmath.Rect{X: 60, Y: 60, Width: 20, Height: 20}
	f := newFixture(t, s)

	f.game.Frame()

	if f.game.Active() {
		t.Fatal("Expected game inactive after contact")
	}
	if f.game.Outcome() != OutcomeCollision {
		t.Errorf("Expected collision outcome, got %v", f.game.Outcome())
	}
	types := f.eventTypes()
	if countType(types, events.EventCollision) != 1 {
		t.Errorf("Expected one collision event, got %v", types)
	}
	if countType(types, events.EventVictory) != 0 {
		t.Errorf("Expected no victory event, got %v", types)
	}
}

// TestCollisionReportedOnce verifies several overlapping obstacles end the game once
func TestCollisionReportedOnce(t *testing.T) {
	s := newFakeSurface()
	s.obstacles = []vmath.Rect{
		{X: 500, Y: 500, Width: 10, Height: 10},
		{X: 45, Y: 45, Width: 20, Height: 20},
		{X: 60, Y: 60, Width: 20, Height: 20},
	}
	f := newFixture(t, s)

	f.game.Frame()
	f.game.Frame()

	evs := f.queue.Consume()
	var collisions []*events.CollisionPayload
	for _, ev := range evs {
		if ev.Type == events.EventCollision {
			collisions = append(collisions, ev.Payload.(*events.CollisionPayload))
		}
	}
	if len(collisions) != 1 {
		t.Fatalf("Expected exactly one collision, got %d", len(collisions))
	}
	if collisions[0].Obstacle != 1 {
		t.Errorf("Expected first overlapping obstacle index 1, got %d", collisions[0].Obstacle)
	}
}

// TestVictoryCarriesDimension verifies goal contact reports the current dimension
func TestVictoryCarriesDimension(t *testing.T) {
	s := newFakeSurface()
	s.goal = vmath.Rect{X: 70, Y: 40, Width: 20, Height: 20}
	f := newFixture(t, s)

	f.game.ShiftDimension()
	f.game.ShiftDimension()
	f.queue.Consume()

	f.game.Frame()

	evs := f.queue.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventVictory {
		t.Fatalf("Expected a single victory event, got %v", evs)
	}
	if p := evs[0].Payload.(*events.VictoryPayload); p.Dimension != 3 {
		t.Errorf("Expected dimension 3, got %d", p.Dimension)
	}
	if f.game.Outcome() != OutcomeVictory {
		t.Errorf("Expected victory outcome, got %v", f.game.Outcome())
	}
}

// TestNoPhysicsAfterTerminal verifies frames stop moving the entity once inactive
func TestNoPhysicsAfterTerminal(t *testing.T) {
	s := newFakeSurface()
	s.goal = vmath.Rect{X: 70, Y: 40, Width: 20, Height: 20}
	f := newFixture(t, s)

	f.game.Frame()
	before := f.game.Entity()
	syncs := f.surface.syncs

	for i := 0; i < 5; i++ {
		f.game.Frame()
	}
	if f.game.Entity() != before {
		t.Errorf("Expected entity frozen, got %+v vs %+v", f.game.Entity(), before)
	}
	if f.surface.syncs != syncs {
		t.Error("Expected no position sync after terminal outcome")
	}
}

// TestTogglesIgnoredAfterTerminal verifies mode keys do nothing once the game ended
func TestTogglesIgnoredAfterTerminal(t *testing.T) {
	s := newFakeSurface()
	s.goal = vmath.Rect{X: 70, Y: 40, Width: 20, Height: 20}
	f := newFixture(t, s)
	f.game.Frame()
	f.queue.Consume()

	f.game.ToggleGravity()
	f.game.ShiftDimension()
	f.game.ToggleTime()

	if f.game.Mode() != NewModeState() {
		t.Errorf("Expected mode unchanged, got %+v", f.game.Mode())
	}
	if f.clock.ActiveTickers() != 0 {
		t.Error("Expected no sampler after terminal outcome")
	}
	if n := f.queue.Len(); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}

// TestTimeToggleSamplerLifecycle verifies sampling starts on enable and stops on disable
func TestTimeToggleSamplerLifecycle(t *testing.T) {
	f := newFixture(t, newFakeSurface())

	if f.game.SampleC() != nil {
		t.Fatal("Expected nil sample channel before time reversal")
	}

	f.game.ToggleTime()
	if f.clock.ActiveTickers() != 1 || f.game.SampleC() == nil {
		t.Fatal("Expected sampler running after enable")
	}

	f.clock.Advance(100 * time.Millisecond)
	select {
	case <-f.game.SampleC():
	default:
		t.Error("Expected a sample tick after 100ms")
	}

	f.game.ToggleTime()
	if f.clock.ActiveTickers() != 0 || f.game.SampleC() != nil {
		t.Error("Expected sampler stopped after disable")
	}
}

// TestSampleOnlyWhileReversed verifies recording is gated by the mode flag
func TestSampleOnlyWhileReversed(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	f.game.Sample()
	if f.game.History().Len() != 0 {
		t.Error("Expected no sample while time runs forward")
	}

	f.game.ToggleTime()
	f.game.Sample()
	if f.game.History().Len() != 1 {
		t.Errorf("Expected 1 sample, got %d", f.game.History().Len())
	}
}

// TestEnableClearsHistory verifies re-enabling time reversal starts from empty
func TestEnableClearsHistory(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	f.game.ToggleTime()
	f.game.Sample()
	f.game.Sample()
	f.game.ToggleTime() // rewind pending
	f.game.ToggleTime() // re-enable before any frame

	if f.game.History().Len() != 0 {
		t.Errorf("Expected cleared history, got %d", f.game.History().Len())
	}
	if f.game.Snapshot().Rewinding {
		t.Error("Expected pending rewind cancelled by re-enable")
	}
}

// TestRewindNewestFirst verifies one snapshot per frame, newest first, velocity kept
func TestRewindNewestFirst(t *testing.T) {
	f := newFixture(t, newFakeSurface())
	f.game.Input().KeyDown(input.ArrowRight, testStart)

	f.game.ToggleTime()
	var recorded []vmath.Point
	for i := 0; i < 3; i++ {
		f.game.Frame()
		f.game.Sample()
		recorded = append(recorded, f.game.Entity().Position())
	}
	f.game.ToggleTime()
	f.queue.Consume()

	for i := len(recorded) - 1; i >= 0; i-- {
		velBefore := f.game.Entity().Velocity
		f.game.Frame()
		e := f.game.Entity()
		if e.Position() != recorded[i] {
			t.Errorf("Rewind step %d: expected %v, got %v", len(recorded)-i, recorded[i], e.Position())
		}
		// Physics still ran this frame: velocity advanced by gravity, not restored
		if e.Velocity != velBefore+0.5 {
			t.Errorf("Expected velocity %v, got %v", velBefore+0.5, e.Velocity)
		}
	}

	if !f.game.Snapshot().Rewinding {
		t.Error("Expected rewind still pending until an empty pop")
	}
	f.game.Frame()
	if f.game.Snapshot().Rewinding {
		t.Error("Expected rewind finished after draining")
	}

	evs := f.queue.Consume()
	var finished *events.RewindPayload
	for _, ev := range evs {
		if ev.Type == events.EventRewindFinished {
			finished = ev.Payload.(*events.RewindPayload)
		}
	}
	if finished == nil || finished.Steps != 3 {
		t.Errorf("Expected rewind finished after 3 steps, got %+v", finished)
	}
}

// TestEmptyRewindIsNoOp verifies enable+disable with no samples leaves the trajectory unchanged
func TestEmptyRewindIsNoOp(t *testing.T) {
	a := newFixture(t, newFakeSurface())
	b := newFixture(t, newFakeSurface())

	a.game.ToggleTime()
	a.game.ToggleTime()

	for i := 0; i < 20; i++ {
		a.game.Frame()
		b.game.Frame()
		if a.game.Entity() != b.game.Entity() {
			t.Fatalf("Frame %d: trajectories diverged %+v vs %+v", i, a.game.Entity(), b.game.Entity())
		}
	}
}

// TestTerminalStopsSampler verifies collision cancels the sampling ticker
func TestTerminalStopsSampler(t *testing.T) {
	s := newFakeSurface()
	f := newFixture(t, s)

	f.game.ToggleTime()
	s.obstacles = []vmath.Rect{{X: 0, Y: 0, Width: 200, Height: 200}}
	f.game.Frame()

	if f.game.Active() {
		t.Fatal("Expected collision")
	}
	if f.clock.ActiveTickers() != 0 || f.game.SampleC() != nil {
		t.Error("Expected sampler stopped on terminal outcome")
	}
}

// TestBoundsInvariantRandomInput verifies position stays in bounds under random play
func TestBoundsInvariantRandomInput(t *testing.T) {
	s := newFakeSurface()
	s.goal = vmath.Rect{X: 799, Y: 599, Width: 1, Height: 1}
	f := newFixture(t, s)
	rng := rand.New(rand.NewSource(7))
	keys := []input.Key{
		input.ArrowUp, input.ArrowDown, input.ArrowLeft, input.ArrowRight,
		input.KeyGravity, input.KeyDimension, input.KeyTime,
	}

	for frame := 0; frame < 2000; frame++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			f.game.Input().KeyDown(k, testStart)
		} else {
			f.game.Input().KeyUp(k)
		}
		if rng.Intn(6) == 0 {
			f.game.Sample()
		}
		f.game.Frame()

		e := f.game.Entity()
		if e.X < 0 || e.X > 770 || e.Y < 0 || e.Y > 570 {
			t.Fatalf("Frame %d: entity out of bounds (%v, %v)", frame, e.X, e.Y)
		}
	}
}
