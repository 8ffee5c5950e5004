package engine

import "github.com/lixenwraith/reality-bender/constants"

// ModeState holds the togglable global parameters
type ModeState struct {
	GravityDirection int  // 1 down, -1 up
	Dimension        int  // 1..3, cosmetic
	TimeReversed     bool // sampling history while true
}

// NewModeState returns gravity down, dimension 1, time forward
func NewModeState() ModeState {
	return ModeState{
		GravityDirection: constants.GravityDown,
		Dimension:        1,
	}
}

// FlipGravity inverts gravity and returns the new direction
func (m *ModeState) FlipGravity() int {
	m.GravityDirection *= -1
	return m.GravityDirection
}

// NextDimension cycles 1→2→3→1 and returns the new dimension
func (m *ModeState) NextDimension() int {
	m.Dimension = m.Dimension%constants.DimensionCount + 1
	return m.Dimension
}

// FlipTime inverts time reversal and returns the new flag
func (m *ModeState) FlipTime() bool {
	m.TimeReversed = !m.TimeReversed
	return m.TimeReversed
}
