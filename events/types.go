package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventKeyPressed signals a movement key went down
	// Trigger: Input tracker on ArrowUp/Down/Left/Right
	// Consumer: Renderer (entity flash) | Payload: *KeyPressedPayload
	EventKeyPressed EventType = iota

	// EventGravityToggled signals the gravity direction flipped
	// Trigger: 'g' key | Consumer: Renderer (alert, paradox ripple), SoundManager
	// Payload: *GravityPayload
	EventGravityToggled

	// EventDimensionShifted signals the dimension advanced
	// Trigger: 'd' key | Consumer: Renderer (palette, flash, alert), SoundManager
	// Payload: *DimensionPayload
	EventDimensionShifted

	// EventTimeToggled signals time reversal was switched on or off
	// Trigger: 't' key | Consumer: Renderer (tint, alert), SoundManager
	// Payload: *TimePayload
	EventTimeToggled

	// EventRewindFinished signals the rewind drained the position history
	// Trigger: Game rewind step | Payload: *RewindPayload
	EventRewindFinished

	// EventCollision signals the entity hit an obstacle, terminal
	// Trigger: Collision resolver | Consumer: Renderer (retry), SoundManager, entry point (restart)
	// Payload: *CollisionPayload
	EventCollision

	// EventVictory signals the entity reached the goal, terminal
	// Trigger: Collision resolver | Consumer: Renderer (victory screen), SoundManager
	// Payload: *VictoryPayload
	EventVictory
)

var eventNames = [...]string{
	EventKeyPressed:       "KeyPressed",
	EventGravityToggled:   "GravityToggled",
	EventDimensionShifted: "DimensionShifted",
	EventTimeToggled:      "TimeToggled",
	EventRewindFinished:   "RewindFinished",
	EventCollision:        "Collision",
	EventVictory:          "Victory",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "Unknown"
}

// GameEvent is a single fire-and-forget notification from the game core
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     uint64
	Timestamp time.Time
}
