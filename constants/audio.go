package constants

import "time"

// Gravity Cue Timing
const (
	GravitySoundDuration = 250 * time.Millisecond
	GravitySoundAttack   = 10 * time.Millisecond
	GravitySoundRelease  = 120 * time.Millisecond
)

// Dimension Cue Timing
const (
	DimensionSoundDuration = 400 * time.Millisecond
	DimensionSoundAttack   = 5 * time.Millisecond
	DimensionSoundRelease  = 300 * time.Millisecond
)

// Time Cue Timing
const (
	TimeSoundDuration = 300 * time.Millisecond
	TimeSoundAttack   = 150 * time.Millisecond
	TimeSoundRelease  = 150 * time.Millisecond
)

// Collision Cue Timing
const (
	CollisionSoundDuration = 180 * time.Millisecond
	CollisionSoundAttack   = 5 * time.Millisecond
	CollisionSoundRelease  = 40 * time.Millisecond
)

// Victory Cue Timing
const (
	VictorySoundNote1Duration = 80 * time.Millisecond
	VictorySoundNote2Duration = 280 * time.Millisecond
	VictorySoundAttack        = 5 * time.Millisecond
	VictorySoundNote1Release  = 40 * time.Millisecond
	VictorySoundNote2Release  = 200 * time.Millisecond
)
