package audio

import "fmt"

// SoundType represents different sound cues
type SoundType int

const (
	SoundGravity   SoundType = iota // Gravity flip sweep
	SoundDimension                  // Dimension shift chime, pitch follows dimension
	SoundTime                       // Time reversal swell
	SoundCollision                  // Paradox buzz
	SoundVictory                    // Two-note resolve
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundGravity:   "gravity",
	SoundDimension: "dimension",
	SoundTime:      "time",
	SoundCollision: "collision",
	SoundVictory:   "victory",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config key such as "gravity" to its SoundType
func ParseSoundType(name string) (SoundType, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound %q", name)
}
