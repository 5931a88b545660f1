// Package layout provides rectangular areas and a constraint solver
// for splitting them into regions.
package layout

// Rect is a rectangular area in the terminal. Coordinates are
// 0-indexed with (0, 0) at the top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a new rectangle.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Area returns width times height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner returns the rectangle shrunk by margin on every side. When the
// rectangle cannot fit a doubled margin the zero Rect is returned.
func (r Rect) Inner(margin int) Rect {
	doubled := margin * 2
	if r.Width < doubled || r.Height < doubled {
		return Rect{}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - doubled,
		Height: r.Height - doubled,
	}
}

// Intersection returns the overlapping region of two rectangles. The
// result has zero width or height when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  max(0, x2-x1),
		Height: max(0, y2-y1),
	}
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
