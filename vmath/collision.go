package vmath

// Overlaps is the AABB test used for obstacle and goal contact
// Edges are inclusive: boxes that only touch count as overlapping
func Overlaps(a, b Rect) bool {
	return !(a.Right() < b.Left() ||
		a.Left() > b.Right() ||
		a.Bottom() < b.Top() ||
		a.Top() > b.Bottom())
}

// FirstOverlap returns the index of the first box in boxes overlapping r, or -1
func FirstOverlap(r Rect, boxes []Rect) int {
	for i, b := range boxes {
		if Overlaps(r, b) {
			return i
		}
	}
	return -1
}
