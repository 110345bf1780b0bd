// Package geom holds the screen-space geometry used to anchor floating panels
// to trigger surfaces: rectangles, placement and viewport collision handling.
//
// All coordinates are terminal cells. Column 0 / row 0 is the top-left corner
// of the visible viewport.
package geom

// Rect is the bounding box of a single visual element at a point in time.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// NewRect creates a rect from its top-left corner and size.
func NewRect(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// SizeRect creates a rect anchored at the origin, used for panels that have
// been measured but not yet placed.
func SizeRect(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	if r.IsEmpty() {
		return false
	}
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// At returns a copy of the rect moved to the given position.
func (r Rect) At(top, left int) Rect {
	r.Top = top
	r.Left = left
	return r
}

// ViewportSize is the currently visible display area.
type ViewportSize struct {
	Width  int
	Height int
}

// Measurable is anything whose current screen-space bounding box can be read.
// The boolean result is false while the element is not mounted.
type Measurable interface {
	Bounds() (Rect, bool)
}

// Ref is a Measurable the host layout updates whenever it places an element.
// The zero value is an unmounted ref.
type Ref struct {
	rect    Rect
	mounted bool
}

// Set records the element's latest bounds and marks it mounted.
func (r *Ref) Set(rect Rect) {
	r.rect = rect
	r.mounted = true
}

// Unmount marks the element as no longer present on screen.
func (r *Ref) Unmount() {
	r.rect = Rect{}
	r.mounted = false
}

// Bounds implements Measurable.
func (r *Ref) Bounds() (Rect, bool) {
	if r == nil {
		return Rect{}, false
	}
	return r.rect, r.mounted
}

var _ Measurable = (*Ref)(nil)
