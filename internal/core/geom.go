// Package core provides fundamental types and utilities shared by the engine,
// the renderer and the hosts. It has no external dependencies (especially no
// Bubble Tea) to keep simulation logic pure and testable.
package core

// Span is a closed interval on one axis.
type Span struct {
	Min, Max float64
}

// Overlaps returns true if the open interiors of two spans intersect.
// Spans that only touch at an endpoint do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Min < other.Max && other.Min < s.Max
}

// Contains returns true if other lies entirely within s (endpoints inclusive).
func (s Span) Contains(other Span) bool {
	return other.Min >= s.Min && other.Max <= s.Max
}

// Box is an axis-aligned bounding box in world coordinates.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// BoxAround returns the square box enclosing a circle of radius r at (cx, cy).
func BoxAround(cx, cy, r float64) Box {
	return Box{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Horizontal returns the box's extent on the x axis.
func (b Box) Horizontal() Span {
	return Span{Min: b.X, Max: b.X + b.W}
}

// Vertical returns the box's extent on the y axis.
func (b Box) Vertical() Span {
	return Span{Min: b.Y, Max: b.Y + b.H}
}

// Rect represents an integer cell rectangle on a Screen.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
