package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/vmath"
)

//go:embed default.yaml
var defaultLevel []byte

// Setup errors, fatal at initialization
var (
	ErrNoGoal        = errors.New("level has no goal")
	ErrBadViewport   = errors.New("viewport must be larger than the entity")
	ErrBadEntity     = errors.New("entity size must be positive")
	ErrBadObstacle   = errors.New("obstacle size must be positive")
	ErrGoalOutside   = errors.New("goal lies outside the viewport")
	ErrUnknownFormat = errors.New("unknown level format")
)

// Format selects the level file decoder
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// Box is a rectangle in world units
type Box struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Rect converts to the geometry type
func (b Box) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Size is a width/height pair in world units
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// EntitySpec is the entity box and spawn point
type EntitySpec struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	StartX float64 `yaml:"start_x" toml:"start_x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
}

// Level is the static layout of the single screen
type Level struct {
	Name      string     `yaml:"name" toml:"name"`
	Viewport  Size       `yaml:"viewport" toml:"viewport"`
	Entity    EntitySpec `yaml:"entity" toml:"entity"`
	Obstacles []Box      `yaml:"obstacles" toml:"obstacles"`
	Goal      Box        `yaml:"goal" toml:"goal"`
}

// Default returns the built-in level
func Default() *Level {
	l, err := Parse(defaultLevel, FormatYAML)
	if err != nil {
		panic(fmt.Errorf("built-in level: %w", err))
	}
	return l
}

// Load reads a level file, picking the decoder from the extension
func Load(path string) (*Level, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	l, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", filepath.Base(path), err)
	}
	return l, nil
}

// Parse decodes and validates level data
// Missing entity fields fall back to the stock entity size and spawn
func Parse(data []byte, format Format) (*Level, error) {
	l := &Level{
		Entity: EntitySpec{
			Width:  constants.EntityWidth,
			Height: constants.EntityHeight,
			StartX: constants.EntityStartX,
			StartY: constants.EntityStartY,
		},
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, l); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), l); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the geometry the game loop relies on
func (l *Level) Validate() error {
	if l.Entity.Width <= 0 || l.Entity.Height <= 0 {
		return ErrBadEntity
	}
	if l.Viewport.Width < l.Entity.Width || l.Viewport.Height < l.Entity.Height {
		return fmt.Errorf("%w: viewport %vx%v, entity %vx%v", ErrBadViewport,
			l.Viewport.Width, l.Viewport.Height, l.Entity.Width, l.Entity.Height)
	}
	if l.Goal.Rect().Empty() {
		return ErrNoGoal
	}
	if !l.Goal.Rect().Within(l.Viewport.Width, l.Viewport.Height) {
		return ErrGoalOutside
	}
	for i, o := range l.Obstacles {
		if o.Rect().Empty() {
			return fmt.Errorf("%w: obstacle %d", ErrBadObstacle, i)
		}
	}
	return nil
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}
