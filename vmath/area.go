package vmath

// Rect is an axis-aligned box in world units, Y grows downward
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds the box of a width x height entity anchored at p
func RectAt(p Point, width, height float64) Rect {
	return Rect{X: p.X, Y: p.Y, Width: width, Height: height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the box has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the midpoint of the box
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains checks if the point lies inside the box, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Within reports whether r lies fully inside a width x height area anchored at origin
func (r Rect) Within(width, height float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}
