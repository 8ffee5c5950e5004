package physics

import (
	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/input"
	"github.com/lixenwraith/reality-bender/vmath"
)

// Entity is the controllable body; velocity is vertical only
type Entity struct {
	X, Y     float64
	Velocity float64
}

// Position returns the entity anchor
func (e Entity) Position() vmath.Point {
	return vmath.Point{X: e.X, Y: e.Y}
}

// Params are the per-frame physics constants
type Params struct {
	Gravity   float64 // velocity added per frame, times gravity direction
	JumpForce float64 // velocity while jumping with gravity down (negative = upward)
	MoveSpeed float64 // horizontal displacement per frame
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		Gravity:   constants.Gravity,
		JumpForce: constants.JumpForce,
		MoveSpeed: constants.MoveSpeed,
	}
}

// Bounds is the play area and entity size used for clamping
type Bounds struct {
	Width, Height             float64
	EntityWidth, EntityHeight float64
}

// MaxX is the largest legal X for the entity anchor
func (b Bounds) MaxX() float64 { return b.Width - b.EntityWidth }

// MaxY is the largest legal Y for the entity anchor
func (b Bounds) MaxY() float64 { return b.Height - b.EntityHeight }

// Integrate advances e by one frame
// Order: gravity into velocity, velocity into y, horizontal input, jump, clamp
// Jump has no grounded check: while the key is held it overrides velocity every frame
func Integrate(e *Entity, gravityDir int, c input.Controls, b Bounds, p Params) {
	e.Velocity += p.Gravity * float64(gravityDir)
	e.Y += e.Velocity

	if c.Right {
		e.X += p.MoveSpeed
	}
	if c.Left {
		e.X -= p.MoveSpeed
	}

	// Only the key pushing against gravity jumps
	if c.Up && gravityDir == constants.GravityDown {
		e.Velocity = p.JumpForce
	}
	if c.Down && gravityDir == constants.GravityUp {
		e.Velocity = -p.JumpForce
	}

	Clamp(e, b)
}

// Clamp keeps the entity box inside the bounds; velocity is left untouched
func Clamp(e *Entity, b Bounds) {
	e.X = vmath.Clamp(e.X, 0, b.MaxX())
	e.Y = vmath.Clamp(e.Y, 0, b.MaxY())
}
