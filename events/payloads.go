package events

// KeyPressedPayload carries the movement key identifier
type KeyPressedPayload struct {
	Key string
}

// GravityPayload carries the new gravity direction (1 down, -1 up)
type GravityPayload struct {
	Direction int
}

// DimensionPayload carries the dimension entered
type DimensionPayload struct {
	Dimension int
}

// TimePayload carries the new time reversal flag
type TimePayload struct {
	Reversed bool
}

// RewindPayload carries the number of positions replayed
type RewindPayload struct {
	Steps int
}

// CollisionPayload carries the index of the obstacle hit
type CollisionPayload struct {
	Obstacle int
	X, Y     float64
}

// VictoryPayload carries the dimension the goal was reached in
type VictoryPayload struct {
	Dimension int
}
