// Package geometry provides fundamental screen-space value types for the
// popover engine. It contains no external dependencies (especially no Bubble
// Tea) to keep positioning logic pure and testable.
package geometry

// Rect is an axis-aligned rectangle in screen coordinates, top-left origin.
// The zero value doubles as "not yet measured": elements start at the zero
// rect and keep their last measured value until remeasured.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the horizontal midpoint.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// IsZero reports whether the rectangle is the zero rect. Note that a zero
// rect is indistinguishable from a real measurement at the origin with no
// size; callers relying on this must accept that ambiguity.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Size is the dimensions of the current window or screen.
type Size struct {
	Width, Height int
}

// Insets are pixel margins subtracted from the usable viewport on each edge,
// e.g. for notches or system bars.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
