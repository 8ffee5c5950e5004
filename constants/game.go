package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame interval (~60 FPS); physics advances one step per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// HistorySampleInterval is the wall-clock period of position sampling while time is reversed
	HistorySampleInterval = 100 * time.Millisecond

	// CollisionRestartDelay is how long the collision alert stays before the session restarts
	CollisionRestartDelay = 2 * time.Second
)

// Physics Constants
const (
	// Gravity is the per-frame velocity increment, signed by gravity direction
	Gravity = 0.5

	// JumpForce is the velocity set while the jump key is held with gravity pointing down
	JumpForce = -12.0

	// MoveSpeed is the horizontal displacement per frame while a direction key is held
	MoveSpeed = 5.0
)

// Gravity directions
const (
	GravityDown = 1
	GravityUp   = -1
)

// Entity Constants
const (
	// EntityWidth and EntityHeight are the entity box dimensions in world units
	EntityWidth  = 30.0
	EntityHeight = 30.0

	// EntityStartX and EntityStartY are the spawn position
	EntityStartX = 50.0
	EntityStartY = 50.0
)

// HistoryCapacity is the maximum number of recorded positions
const HistoryCapacity = 50

// DimensionCount is the number of dimensions cycled by the dimension shift
const DimensionCount = 3
