// Package core provides fundamental types and utilities for the hexpop
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world (pixel) coordinates.
// X increases to the right, Y increases upward.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance to another vector.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Normalize returns the unit vector in the same direction.
// Returns the zero vector unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned bounding box used for layout and clipping.
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

// Contains returns true if the point (x, y) is inside this rectangle.
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
