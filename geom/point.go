// Package geom provides the 2D point type used by the closest-pair solver.
package geom

import (
	"cmp"
	"math"
	"strconv"

	"github.com/hupe1980/nearpair/vector"
)

// Point is a 2D point. It is the two-component specialization of vector.Vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromVector converts a two-component vector into a Point.
func FromVector(v vector.Vector) (Point, error) {
	if v.Len() != 2 {
		return Point{}, &vector.ErrDimensionMismatch{Op: "point", Expected: 2, Actual: v.Len()}
	}
	c := v.Components()
	return Point{X: c[0], Y: c[1]}, nil
}

// Vector returns p as a two-component vector.
func (p Point) Vector() vector.Vector {
	return vector.Of(p.X, p.Y)
}

// Lift returns p as a three-component vector with a zero z component.
func (p Point) Lift() vector.Vector {
	v := p.Vector()
	v.ExpandEnd(0)
	return v
}

// Compare orders points by Y, then by X.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Compare orders p relative to q by Y, then by X.
func (p Point) Compare(q Point) int {
	return Compare(p, q)
}

// Equal reports whether p and q compare equal.
func (p Point) Equal(q Point) bool {
	return Compare(p, q) == 0
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p, q)
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
