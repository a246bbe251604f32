// Package hex implements odd-r offset coordinates for a pointy-top
// hexagonal grid, with world-space conversion. Y increases upward,
// rows grow downward from the layout origin.
package hex

import (
	"math"

	"github.com/ormakov/hexpop/internal/core"
)

// Sqrt3 is cached because it appears in every pixel conversion.
const Sqrt3 = 1.7320508

// Coord is an odd-r offset coordinate. Odd rows are shifted half a cell
// to the right. Coords are values and never mutated in place.
type Coord struct {
	Q, R int
}

// C is a convenience constructor for Coord.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// odd reports whether the row needs the half-cell shift.
func odd(r int) bool {
	return r&1 != 0
}

// Neighbors returns the six adjacent coordinates. The offsets depend on
// row parity, which is why they are spelled out rather than derived.
func (c Coord) Neighbors() [6]Coord {
	if odd(c.R) {
		return [6]Coord{
			{c.Q + 1, c.R},
			{c.Q + 1, c.R - 1},
			{c.Q, c.R - 1},
			{c.Q - 1, c.R},
			{c.Q, c.R + 1},
			{c.Q + 1, c.R + 1},
		}
	}
	return [6]Coord{
		{c.Q + 1, c.R},
		{c.Q, c.R - 1},
		{c.Q - 1, c.R - 1},
		{c.Q - 1, c.R},
		{c.Q - 1, c.R + 1},
		{c.Q, c.R + 1},
	}
}

// cube converts to cube coordinates for distance math.
func (c Coord) cube() (x, y, z int) {
	x = c.Q - (c.R-(c.R&1))/2
	z = c.R
	y = -x - z
	return
}

// Distance returns the hex grid distance between two coordinates.
func (c Coord) Distance(other Coord) int {
	ax, ay, az := c.cube()
	bx, by, bz := other.cube()
	return (core.Abs(ax-bx) + core.Abs(ay-by) + core.Abs(az-bz)) / 2
}

// Layout maps hex coordinates to world pixels. Size is the hex circumradius;
// OriginY is the world y of row 0 and shifts downward as the field descends.
type Layout struct {
	Size    float64
	OriginY float64
}

// ToPixel returns the world-space center of the cell.
func (l Layout) ToPixel(c Coord) core.Vec2 {
	q := float64(c.Q)
	if odd(c.R) {
		q += 0.5
	}
	return core.Vec2{
		X: l.Size * Sqrt3 * q,
		Y: l.OriginY - l.Size*1.5*float64(c.R),
	}
}

// FromPixel returns the cell whose center is nearest to the point.
// Exact for points inside a cell's inradius, which is all the snapping
// logic needs.
func (l Layout) FromPixel(p core.Vec2) Coord {
	r := int(math.Round((l.OriginY - p.Y) / (l.Size * 1.5)))
	q := p.X / (l.Size * Sqrt3)
	if odd(r) {
		q -= 0.5
	}
	return Coord{Q: int(math.Round(q)), R: r}
}

// Corners returns the six corner points of the cell, pointy-top,
// starting at 30 degrees and going counterclockwise.
func (l Layout) Corners(c Coord) [6]core.Vec2 {
	center := l.ToPixel(c)
	var out [6]core.Vec2
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * (60*float64(i) + 30)
		out[i] = core.Vec2{
			X: center.X + l.Size*math.Cos(angle),
			Y: center.Y + l.Size*math.Sin(angle),
		}
	}
	return out
}
