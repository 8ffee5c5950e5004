package input

// Key identifies a logical key, named after browser key identifiers
// Mode keys are case-sensitive single characters
type Key string

const (
	KeyNone    Key = ""
	ArrowUp    Key = "ArrowUp"
	ArrowDown  Key = "ArrowDown"
	ArrowLeft  Key = "ArrowLeft"
	ArrowRight Key = "ArrowRight"

	KeyGravity   Key = "g"
	KeyDimension Key = "d"
	KeyTime      Key = "t"

	// System keys never reach the tracker
	KeyQuit    Key = "Quit"
	KeyRestart Key = "Restart"
)

// actionNames maps config action names to keys
var actionNames = map[string]Key{
	"arrowup":    ArrowUp,
	"arrowdown":  ArrowDown,
	"arrowleft":  ArrowLeft,
	"arrowright": ArrowRight,
	"g":          KeyGravity,
	"gravity":    KeyGravity,
	"d":          KeyDimension,
	"dimension":  KeyDimension,
	"t":          KeyTime,
	"time":       KeyTime,
	"quit":       KeyQuit,
	"restart":    KeyRestart,
	"none":       KeyNone,
}

// IsMovement reports whether the key drives physics
func (k Key) IsMovement() bool {
	switch k {
	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		return true
	}
	return false
}

// IsMode reports whether the key toggles mode state
func (k Key) IsMode() bool {
	switch k {
	case KeyGravity, KeyDimension, KeyTime:
		return true
	}
	return false
}

// IsSystem reports whether the key is handled by the entry point
func (k Key) IsSystem() bool {
	return k == KeyQuit || k == KeyRestart
}
