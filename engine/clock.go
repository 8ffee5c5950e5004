package engine

import "time"

// Ticker is the subset of time.Ticker the loop uses
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time and periodic tickers
// The loop never touches package time directly so tests can drive it
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// RealClock is the wall clock
type RealClock struct{}

// NewRealClock creates the wall clock
func NewRealClock() RealClock { return RealClock{} }

// Now returns the current time with monotonic reading
func (RealClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.NewTicker
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }
