// Package core holds the types shared by the platformer simulation and the
// terminal front end: geometry, input frames, colors and the screen buffer.
// It imports nothing outside the standard library.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
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

// RectF is a float-precision axis-aligned box in world pixels.
// Entities keep sub-pixel positions so velocity integration stays exact.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new float rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r RectF) CenterY() float64 {
	return r.Y + r.H/2
}

// SetRight moves the rectangle so its right edge sits at x.
func (r *RectF) SetRight(x float64) {
	r.X = x - r.W
}

// SetBottom moves the rectangle so its bottom edge sits at y.
func (r *RectF) SetBottom(y float64) {
	r.Y = y - r.H
}

// SetCenterX moves the rectangle so its horizontal center sits at x.
func (r *RectF) SetCenterX(x float64) {
	r.X = x - r.W/2
}

// SetCenterY moves the rectangle so its vertical center sits at y.
func (r *RectF) SetCenterY(y float64) {
	r.Y = y - r.H/2
}

// Intersects reports strict overlap; touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Offset returns a copy moved by (dx, dy).
func (r RectF) Offset(dx, dy float64) RectF {
	r.X += dx
	r.Y += dy
	return r
}

// Cells converts the rectangle to a cell rectangle, given the pixel size of
// one cell. The result always covers at least one cell.
func (r RectF) Cells(cellW, cellH float64) Rect {
	x := int(math.Floor(r.X / cellW))
	y := int(math.Floor(r.Y / cellH))
	right := int(math.Ceil(r.Right() / cellW))
	bottom := int(math.Ceil(r.Bottom() / cellH))
	return NewRect(x, y, Max(right-x, 1), Max(bottom-y, 1))
}
