// Package core provides fundamental types and utilities shared by the volley
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing boxes.
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

// RectF is an axis-aligned box in field units, used for collision detection.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical center of the box.
func (r RectF) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as an overlap.
func (r RectF) Overlaps(other RectF) bool {
	return r.Right() > other.X &&
		r.X < other.Right() &&
		r.Bottom() > other.Y &&
		r.Y < other.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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
