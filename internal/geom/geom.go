// Package geom holds the grid and rectangle arithmetic shared by the board
// and the terminal view. All values are logical pixels; the view projects
// them onto terminal cells.
package geom

const (
	// Grid is the snap unit for note placement.
	Grid = 20

	// DragThreshold separates a click from a drag.
	DragThreshold = 5

	// SnapBias is added to a coordinate before snapping at drag end so a
	// note dropped just past a grid line doesn't jump back.
	SnapBias = 10

	// ExtentMargin is the scrollable slack kept past the furthest note.
	ExtentMargin = 40000

	// PxPerCol and PxPerRow define the world-to-cell projection.
	PxPerCol = 10
	PxPerRow = 20
)

// Snap rounds v down to the nearest multiple of grid. Floored, not
// truncating: for every integer v, v-grid < Snap(v, grid) <= v.
func Snap(v, grid int) int {
	m := v % grid
	if m < 0 {
		m += grid
	}
	return v - m
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectAt builds a Rect from an origin and size.
func RectAt(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// FromCorners builds a normalized Rect from any two opposite corners.
func FromCorners(x1, y1, x2, y2 int) Rect {
	r := Rect{Left: x1, Top: y1, Right: x2, Bottom: y2}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Intersects reports axis-aligned overlap. The boundary asymmetry is
// deliberate: rectangles sharing only an edge still count as intersecting
// unless one is strictly outside the other on some axis.
func (r Rect) Intersects(o Rect) bool {
	return !(o.Left > r.Right || o.Right < r.Left || o.Top > r.Bottom || o.Bottom < r.Top)
}

// Contains reports whether the point (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Width and Height of the rectangle.
func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Extent computes the scrollable canvas size: the furthest note extent plus
// margin, never smaller than the viewport. The canvas only grows.
func Extent(maxRight, maxBottom, viewW, viewH int) (int, int) {
	w := maxRight + ExtentMargin
	if w < viewW {
		w = viewW
	}
	h := maxBottom + ExtentMargin
	if h < viewH {
		h = viewH
	}
	return w, h
}
