package input

import (
	"sort"
	"time"
)

// DefaultReleaseAfter is how long a key stays held without a repeat
// Terminals report no key-up, so release is inferred from repeat silence
const DefaultReleaseAfter = 150 * time.Millisecond

// ModeToggler receives discrete mode key presses
type ModeToggler interface {
	ToggleGravity()
	ShiftDimension()
	ToggleTime()
}

// Controls is the held state of the movement keys, sampled once per physics step
type Controls struct {
	Up, Down, Left, Right bool
}

// Options configures a Tracker
type Options struct {
	// DebounceModeKeys ignores key-repeat for g/d/t while the key is held
	// Off by default: every key-down toggles, repeats included
	DebounceModeKeys bool

	// ReleaseAfter is the repeat silence that synthesizes a key-up, 0 disables
	ReleaseAfter time.Duration

	// OnMovement is called on every movement key-down for transient cues
	OnMovement func(Key)
}

// Tracker records which keys are held and turns mode key presses into toggles
type Tracker struct {
	held     map[Key]bool
	lastSeen map[Key]time.Time
	toggler  ModeToggler
	opts     Options
}

// NewTracker creates a tracker dispatching mode toggles to toggler
func NewTracker(toggler ModeToggler, opts Options) *Tracker {
	return &Tracker{
		held:     make(map[Key]bool),
		lastSeen: make(map[Key]time.Time),
		toggler:  toggler,
		opts:     opts,
	}
}

// KeyDown marks key held and dispatches mode toggles and movement cues
func (t *Tracker) KeyDown(key Key, now time.Time) {
	wasHeld := t.held[key]
	t.held[key] = true
	t.lastSeen[key] = now

	if key.IsMode() && !(t.opts.DebounceModeKeys && wasHeld) {
		t.dispatchMode(key)
	}

	if key.IsMovement() && t.opts.OnMovement != nil {
		t.opts.OnMovement(key)
	}
}

// KeyUp marks key released
func (t *Tracker) KeyUp(key Key) {
	t.held[key] = false
	delete(t.lastSeen, key)
}

// Held returns the held state of key
func (t *Tracker) Held(key Key) bool {
	return t.held[key]
}

// Controls snapshots the movement keys
func (t *Tracker) Controls() Controls {
	return Controls{
		Up:    t.held[ArrowUp],
		Down:  t.held[ArrowDown],
		Left:  t.held[ArrowLeft],
		Right: t.held[ArrowRight],
	}
}

// ReleaseStale releases keys not refreshed within ReleaseAfter and returns them sorted
func (t *Tracker) ReleaseStale(now time.Time) []Key {
	if t.opts.ReleaseAfter <= 0 {
		return nil
	}

	var released []Key
	for key, seen := range t.lastSeen {
		if now.Sub(seen) >= t.opts.ReleaseAfter {
			released = append(released, key)
		}
	}
	for _, key := range released {
		t.KeyUp(key)
	}

	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

func (t *Tracker) dispatchMode(key Key) {
	if t.toggler == nil {
		return
	}
	switch key {
	case KeyGravity:
		t.toggler.ToggleGravity()
	case KeyDimension:
		t.toggler.ShiftDimension()
	case KeyTime:
		t.toggler.ToggleTime()
	}
}
