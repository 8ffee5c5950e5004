package constants

import "time"

// Effect Timing Constants
const (
	// AlertDuration is how long a reality alert banner stays on screen
	AlertDuration = 2 * time.Second

	// ParadoxEffectDuration is the lifetime of the ripple spawned by a gravity toggle
	ParadoxEffectDuration = 1 * time.Second

	// DimensionShiftFlashDuration is the lifetime of the dimension shift flash
	DimensionShiftFlashDuration = 500 * time.Millisecond

	// KeyPressFlashDuration is the lifetime of the entity highlight on movement keys
	KeyPressFlashDuration = 100 * time.Millisecond
)

// Terminal Layout Constants
const (
	// CellWidth and CellHeight are world units covered by one terminal cell
	CellWidth  = 10.0
	CellHeight = 20.0

	// HUDRows is the number of rows reserved below the play area
	HUDRows = 1
)

// Alert and screen texts
const (
	AlertGravity   = "Gravity Inverted!"
	AlertTime      = "Time Reversed!"
	AlertCollision = "Paradox Created! Restarting..."
	VictoryTitle   = "Reality Stabilized!"
	VictoryButton  = "[r] Bend Again"
)
