// Package core provides fundamental types and utilities for the lunarcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

// Bounds describes the world-space coordinate box the simulation runs in.
// The origin is the bottom-left corner; y grows upward, the way altitude
// does. The terminal renderer projects this box onto the cell grid.
type Bounds struct {
	W, H float64
}

// NewBounds creates a world box with the given extent.
func NewBounds(w, h float64) Bounds {
	return Bounds{W: w, H: h}
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.W && y >= 0 && y <= b.H
}

// Rect represents an axis-aligned box on the terminal cell grid.
// Used by the renderer for HUD panels and message boxes.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
