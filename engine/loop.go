package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/input"
)

// KeyEvent is a translated key press or release from the input source
type KeyEvent struct {
	Key  input.Key
	Up   bool
	Time time.Time // zero means "now"
}

// Exit tells the owner why the loop returned
type Exit uint8

const (
	ExitQuit Exit = iota
	ExitRestart
)

// LoopConfig configures the scheduler
type LoopConfig struct {
	// FrameInterval is the frame period; physics has no delta time, one step per frame
	FrameInterval time.Duration

	// RestartDelay ends the loop with ExitRestart this long after a collision, 0 waits for the restart key
	RestartDelay time.Duration
}

// DefaultLoopConfig returns ~60 FPS with the collision restart delay
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FrameInterval: constants.FrameUpdateInterval,
		RestartDelay:  constants.CollisionRestartDelay,
	}
}

// Loop drives a Game from a single goroutine
// Key events, frame ticks and history samples are serialized by one select,
// so game state needs no locking
type Loop struct {
	game    *Game
	router  *events.Router
	clock   Clock
	keys    <-chan KeyEvent
	cfg     LoopConfig
	metrics *Metrics
	onFrame func(Snapshot)

	restartAt time.Time
}

// NewLoop creates a loop; events emitted by game are dispatched through router
func NewLoop(game *Game, router *events.Router, clock Clock, keys <-chan KeyEvent, cfg LoopConfig) *Loop {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameUpdateInterval
	}
	return &Loop{
		game:   game,
		router: router,
		clock:  clock,
		keys:   keys,
		cfg:    cfg,
	}
}

// OnFrame registers the presentation hook called after every frame
func (l *Loop) OnFrame(fn func(Snapshot)) { l.onFrame = fn }

// SetMetrics enables per-frame metric publication
func (l *Loop) SetMetrics(m *Metrics) { l.metrics = m }

// Run schedules frames until quit, restart, input closure or ctx cancellation
// The sampling ticker is always released on return
func (l *Loop) Run(ctx context.Context) (Exit, error) {
	frames := l.clock.NewTicker(l.cfg.FrameInterval)
	defer frames.Stop()
	defer l.game.Stop()

	for {
		select {
		case <-ctx.Done():
			return ExitQuit, ctx.Err()

		case ev, ok := <-l.keys:
			if !ok {
				return ExitQuit, nil
			}
			if exit, done := l.handleKey(ev); done {
				return exit, nil
			}
			l.router.DispatchAll()

		case <-frames.C():
			if l.frame() {
				return ExitRestart, nil
			}

		case <-l.game.SampleC():
			l.game.Sample()
		}
	}
}

// frame runs one tick and reports whether the restart deadline passed
func (l *Loop) frame() bool {
	now := l.clock.Now()
	l.game.Input().ReleaseStale(now)

	wasActive := l.game.Active()
	l.game.Frame()
	l.router.DispatchAll()

	snap := l.game.Snapshot()
	if wasActive && snap.Outcome == OutcomeCollision && l.cfg.RestartDelay > 0 {
		l.restartAt = now.Add(l.cfg.RestartDelay)
	}

	if l.metrics != nil {
		l.metrics.Publish(snap)
	}
	if l.onFrame != nil {
		l.onFrame(snap)
	}

	return !l.restartAt.IsZero() && !now.Before(l.restartAt)
}

// handleKey routes system keys to the owner and the rest to the tracker
// Game keys are dropped after a terminal outcome
func (l *Loop) handleKey(ev KeyEvent) (Exit, bool) {
	switch {
	case ev.Key == input.KeyQuit:
		return ExitQuit, true
	case ev.Key == input.KeyRestart:
		return ExitRestart, !l.game.Active()
	case !l.game.Active():
		return 0, false
	}

	if ev.Up {
		l.game.Input().KeyUp(ev.Key)
		return 0, false
	}

	t := ev.Time
	if t.IsZero() {
		t = l.clock.Now()
	}
	l.game.Input().KeyDown(ev.Key, t)
	return 0, false
}
