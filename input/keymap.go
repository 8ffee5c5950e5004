package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialByName is the lowercased reverse of tcell.KeyNames
var specialByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keymap maps terminal keys to logical keys
type Keymap struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Special map[tcell.Key]Key

	// Printable rune bindings, case-sensitive
	Runes map[rune]Key
}

// DefaultKeymap returns the default bindings: arrows, g/d/t, q/Esc/Ctrl-C quit, r restart
func DefaultKeymap() *Keymap {
	return &Keymap{
		Special: map[tcell.Key]Key{
			tcell.KeyUp:     ArrowUp,
			tcell.KeyDown:   ArrowDown,
			tcell.KeyLeft:   ArrowLeft,
			tcell.KeyRight:  ArrowRight,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
		},
		Runes: map[rune]Key{
			'g': KeyGravity,
			'd': KeyDimension,
			't': KeyTime,
			'q': KeyQuit,
			'r': KeyRestart,
		},
	}
}

// Lookup resolves a terminal key event to a logical key
func (km *Keymap) Lookup(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := km.Runes[ev.Rune()]
		return k, ok
	}
	k, ok := km.Special[ev.Key()]
	return k, ok
}

// Clone returns a deep copy
func (km *Keymap) Clone() *Keymap {
	c := &Keymap{
		Special: make(map[tcell.Key]Key, len(km.Special)),
		Runes:   make(map[rune]Key, len(km.Runes)),
	}
	for k, v := range km.Special {
		c.Special[k] = v
	}
	for k, v := range km.Runes {
		c.Runes[k] = v
	}
	return c
}

// ParseBindings builds a sparse override keymap from key name → action name pairs
// Key names are single characters, rune aliases, or tcell key names ("Up", "Ctrl-C")
// Returns error on unknown key or action names
func ParseBindings(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		Special: make(map[tcell.Key]Key),
		Runes:   make(map[rune]Key),
	}

	for keyStr, actionName := range bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			km.Runes[r] = action
			continue
		}

		special, ok := specialByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		km.Special[special] = action
	}

	return km, nil
}

// MergeKeymap returns base overridden by override
// Override entries bound to KeyNone ("none" action) delete the key from the result
func MergeKeymap(base, override *Keymap) *Keymap {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Special {
		if v == KeyNone {
			delete(result.Special, k)
		} else {
			result.Special[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == KeyNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name to a logical key
func resolveAction(name string) (Key, error) {
	k, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyNone, fmt.Errorf("unknown action: %q", name)
	}
	return k, nil
}
