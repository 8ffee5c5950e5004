package physics

import (
	"testing"

	"github.com/lixenwraith/reality-bender/input"
)

var testBounds = Bounds{Width: 800, Height: 600, EntityWidth: 30, EntityHeight: 30}

// TestIntegrateRightStep verifies the reference single step with right held
func TestIntegrateRightStep(t *testing.T) {
	e := Entity{X: 50, Y: 50}
	Integrate(&e, 1, input.Controls{Right: true}, testBounds, DefaultParams())

	if e.Velocity != 0.5 {
		t.Errorf("Expected velocity 0.5, got %v", e.Velocity)
	}
	if e.Y != 50.5 {
		t.Errorf("Expected y 50.5, got %v", e.Y)
	}
	if e.X != 55 {
		t.Errorf("Expected x 55, got %v", e.X)
	}
}

// TestIntegrateRightStepClamped verifies the same step against a narrow viewport
func TestIntegrateRightStepClamped(t *testing.T) {
	e := Entity{X: 50, Y: 50}
	narrow := Bounds{Width: 80, Height: 600, EntityWidth: 30, EntityHeight: 30}
	Integrate(&e, 1, input.Controls{Right: true}, narrow, DefaultParams())

	if e.X != 50 {
		t.Errorf("Expected x clamped to 50, got %v", e.X)
	}
}

// TestIntegrateJumpOverridesVelocity verifies up sets -12 regardless of prior velocity
func TestIntegrateJumpOverridesVelocity(t *testing.T) {
	for _, prior := range []float64{-30, 0, 7.5, 40} {
		e := Entity{X: 100, Y: 300, Velocity: prior}
		Integrate(&e, 1, input.Controls{Up: true}, testBounds, DefaultParams())
		if e.Velocity != -12 {
			t.Errorf("Prior %v: expected velocity -12, got %v", prior, e.Velocity)
		}
	}
}

// TestIntegrateJumpRepeatsWhileHeld verifies there is no grounded check
func TestIntegrateJumpRepeatsWhileHeld(t *testing.T) {
	e := Entity{X: 100, Y: 300}
	c := input.Controls{Up: true}
	for i := 0; i < 5; i++ {
		Integrate(&e, 1, c, testBounds, DefaultParams())
		if e.Velocity != -12 {
			t.Fatalf("Frame %d: expected velocity -12, got %v", i, e.Velocity)
		}
	}
}

// TestIntegrateInvertedGravityJump verifies down jumps only with gravity up
func TestIntegrateInvertedGravityJump(t *testing.T) {
	e := Entity{X: 100, Y: 300}
	Integrate(&e, -1, input.Controls{Down: true}, testBounds, DefaultParams())
	if e.Velocity != 12 {
		t.Errorf("Expected velocity 12 with gravity up, got %v", e.Velocity)
	}

	// Up does nothing special when gravity is inverted
	e = Entity{X: 100, Y: 300}
	Integrate(&e, -1, input.Controls{Up: true}, testBounds, DefaultParams())
	if e.Velocity != -0.5 {
		t.Errorf("Expected velocity -0.5, got %v", e.Velocity)
	}

	// Down does nothing when gravity points down
	e = Entity{X: 100, Y: 300}
	Integrate(&e, 1, input.Controls{Down: true}, testBounds, DefaultParams())
	if e.Velocity != 0.5 {
		t.Errorf("Expected velocity 0.5, got %v", e.Velocity)
	}
}

// TestIntegrateLeftRightCancel verifies both directions held net zero
func TestIntegrateLeftRightCancel(t *testing.T) {
	e := Entity{X: 200, Y: 200}
	Integrate(&e, 1, input.Controls{Left: true, Right: true}, testBounds, DefaultParams())
	if e.X != 200 {
		t.Errorf("Expected x unchanged, got %v", e.X)
	}
}

// TestIntegrateJumpAppliesAfterPosition verifies the jump velocity moves y next frame
func TestIntegrateJumpAppliesAfterPosition(t *testing.T) {
	e := Entity{X: 100, Y: 300}
	Integrate(&e, 1, input.Controls{Up: true}, testBounds, DefaultParams())
	if e.Y != 300.5 {
		t.Errorf("Expected y 300.5 on the jump frame, got %v", e.Y)
	}
	Integrate(&e, 1, input.Controls{}, testBounds, DefaultParams())
	if e.Y != 289 {
		t.Errorf("Expected y 289 after jump frame, got %v", e.Y)
	}
}

// TestIntegrateBoundsInvariant verifies the position stays in bounds under any input
func TestIntegrateBoundsInvariant(t *testing.T) {
	combos := []input.Controls{
		{}, {Up: true}, {Down: true}, {Left: true}, {Right: true},
		{Up: true, Right: true}, {Down: true, Left: true},
	}

	for _, dir := range []int{1, -1} {
		for _, c := range combos {
			e := Entity{X: 50, Y: 50}
			for frame := 0; frame < 500; frame++ {
				Integrate(&e, dir, c, testBounds, DefaultParams())
				if e.X < 0 || e.X > testBounds.MaxX() || e.Y < 0 || e.Y > testBounds.MaxY() {
					t.Fatalf("dir %d controls %+v frame %d: out of bounds (%v, %v)", dir, c, frame, e.X, e.Y)
				}
			}
		}
	}
}

// TestClampKeepsVelocity verifies clamping does not zero the velocity
func TestClampKeepsVelocity(t *testing.T) {
	e := Entity{X: -10, Y: 1000, Velocity: 9}
	Clamp(&e, testBounds)
	if e.X != 0 || e.Y != 570 {
		t.Errorf("Expected (0, 570), got (%v, %v)", e.X, e.Y)
	}
	if e.Velocity != 9 {
		t.Errorf("Expected velocity preserved, got %v", e.Velocity)
	}
}
