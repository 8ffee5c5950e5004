package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how the renderer uses color
type ColorMode int

const (
	// ColorAuto uses RGB colors; tcell downsamples on terminals without truecolor
	ColorAuto ColorMode = iota
	// ColorMono draws with the terminal default colors and distinct glyphs only
	ColorMono
)

// ParseColorMode parses the -color flag value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "mono", "none":
		return ColorMono, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto or mono)", s)
}

// Palette is the color set for one dimension
type Palette struct {
	Background tcell.Color
	Obstacle   tcell.Color
	Goal       tcell.Color
	Entity     tcell.Color
	Flash      tcell.Color
	Ripple     tcell.Color
	Text       tcell.Color
	HUD        tcell.Color
}

// Base hues per dimension in HCL degrees
var dimensionHues = [...]float64{
	1: 250, // Deep blue
	2: 310, // Violet
	3: 150, // Green
}

var (
	goldGoal   = colorful.Hcl(85, 0.7, 0.8)
	whiteFlash = colorful.Color{R: 1, G: 1, B: 1}
	sepia      = colorful.Hcl(60, 0.25, 0.45)
)

// DimensionPalette derives the palette for a dimension from its hue
// Dimensions outside 1..3 fall back to dimension 1
func DimensionPalette(dimension int) Palette {
	if dimension < 1 || dimension >= len(dimensionHues) {
		dimension = 1
	}
	h := dimensionHues[dimension]

	return Palette{
		Background: toColor(colorful.Hcl(h, 0.15, 0.12)),
		Obstacle:   toColor(colorful.Hcl(h+170, 0.65, 0.55)),
		Goal:       toColor(goldGoal),
		Entity:     toColor(colorful.Hcl(h, 0.45, 0.85)),
		Flash:      toColor(whiteFlash),
		Ripple:     toColor(colorful.Hcl(h+60, 0.8, 0.7)),
		Text:       toColor(colorful.Hcl(h, 0.05, 0.92)),
		HUD:        toColor(colorful.Hcl(h, 0.2, 0.25)),
	}
}

// Reversed returns the palette washed toward sepia while time runs backward
func (p Palette) Reversed() Palette {
	tint := func(c tcell.Color) tcell.Color { return Blend(c, toColor(sepia), 0.5) }
	return Palette{
		Background: tint(p.Background),
		Obstacle:   tint(p.Obstacle),
		Goal:       tint(p.Goal),
		Entity:     tint(p.Entity),
		Flash:      p.Flash,
		Ripple:     tint(p.Ripple),
		Text:       p.Text,
		HUD:        tint(p.HUD),
	}
}

// Blend mixes a toward b by t in Lab space, t clamped to [0, 1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	t = max(0, min(1, t))
	return toColor(fromColor(a).BlendLab(fromColor(b), t))
}

func toColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromColor(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
