package engine

import (
	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/vmath"
)

// PositionHistory is a bounded FIFO of recorded positions backed by a ring
// Recording into a full buffer evicts the oldest entry
type PositionHistory struct {
	buf   []vmath.Point
	start int // index of oldest
	n     int
}

// NewPositionHistory creates a buffer holding at most capacity positions
func NewPositionHistory(capacity int) *PositionHistory {
	if capacity <= 0 {
		capacity = constants.HistoryCapacity
	}
	return &PositionHistory{buf: make([]vmath.Point, capacity)}
}

// Record appends p, evicting the oldest entry when full
func (h *PositionHistory) Record(p vmath.Point) {
	if h.n == len(h.buf) {
		h.start = (h.start + 1) % len(h.buf)
		h.n--
	}
	h.buf[(h.start+h.n)%len(h.buf)] = p
	h.n++
}

// PopNewest removes and returns the most recent entry
func (h *PositionHistory) PopNewest() (vmath.Point, bool) {
	if h.n == 0 {
		return vmath.Point{}, false
	}
	h.n--
	return h.buf[(h.start+h.n)%len(h.buf)], true
}

// Clear drops every entry
func (h *PositionHistory) Clear() {
	h.start, h.n = 0, 0
}

// Len returns the number of entries
func (h *PositionHistory) Len() int { return h.n }

// Cap returns the maximum number of entries
func (h *PositionHistory) Cap() int { return len(h.buf) }

// Entries returns a copy, oldest first
func (h *PositionHistory) Entries() []vmath.Point {
	out := make([]vmath.Point, h.n)
	for i := range out {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}
