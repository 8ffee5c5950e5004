package vmath

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Clamp restricts v to [lo, hi]; when hi < lo the lower bound wins
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
