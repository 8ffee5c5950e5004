package render

import (
	"math"

	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/vmath"
)

// Layout maps world units to terminal cells
// The play area keeps the stock cell size when it fits and shrinks otherwise;
// the last HUDRows rows of the screen are reserved for the HUD
type Layout struct {
	OffsetX, OffsetY int
	Cols, Rows       int
	CellW, CellH     float64
	ScreenW, ScreenH int
}

// NewLayout fits a worldW x worldH area into a screenW x screenH terminal
func NewLayout(screenW, screenH int, worldW, worldH float64) Layout {
	availW := max(screenW, 1)
	availH := max(screenH-constants.HUDRows, 1)

	cellW := math.Max(constants.CellWidth, worldW/float64(availW))
	cellH := math.Max(constants.CellHeight, worldH/float64(availH))

	cols := min(int(math.Ceil(worldW/cellW)), availW)
	rows := min(int(math.Ceil(worldH/cellH)), availH)

	return Layout{
		OffsetX: (availW - cols) / 2,
		OffsetY: (availH - rows) / 2,
		Cols:    cols,
		Rows:    rows,
		CellW:   cellW,
		CellH:   cellH,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// HUDRow returns the screen row of the HUD line
func (l Layout) HUDRow() int { return l.ScreenH - constants.HUDRows }

// Cell returns the screen cell containing a world point, clamped to the play area
func (l Layout) Cell(p vmath.Point) (int, int) {
	cx := min(max(int(math.Floor(p.X/l.CellW)), 0), l.Cols-1)
	cy := min(max(int(math.Floor(p.Y/l.CellH)), 0), l.Rows-1)
	return l.OffsetX + cx, l.OffsetY + cy
}

// Span returns the screen cells covered by a world box as [x0, x1) x [y0, y1)
// Any non-empty box covers at least one cell
func (l Layout) Span(r vmath.Rect) (x0, y0, x1, y1 int) {
	cx0 := int(math.Floor(r.Left() / l.CellW))
	cy0 := int(math.Floor(r.Top() / l.CellH))
	cx1 := int(math.Ceil(r.Right() / l.CellW))
	cy1 := int(math.Ceil(r.Bottom() / l.CellH))

	cx0 = min(max(cx0, 0), l.Cols-1)
	cy0 = min(max(cy0, 0), l.Rows-1)
	cx1 = min(max(cx1, cx0+1), l.Cols)
	cy1 = min(max(cy1, cy0+1), l.Rows)

	return l.OffsetX + cx0, l.OffsetY + cy0, l.OffsetX + cx1, l.OffsetY + cy1
}

// Contains reports whether a screen cell is inside the play area
func (l Layout) Contains(x, y int) bool {
	return x >= l.OffsetX && x < l.OffsetX+l.Cols && y >= l.OffsetY && y < l.OffsetY+l.Rows
}
