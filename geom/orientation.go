package geom

import (
	"fmt"
	"math"
)

// EPS is the magnitude below which a cross product counts as zero.
const EPS = 1e-19

// Turn enumerates the direction of the path a -> b -> c.
type Turn int

const (
	// CounterClockwise indicates a left turn at b.
	CounterClockwise Turn = iota - 1
	// Collinear indicates that a, b and c lie on one line.
	Collinear
	// Clockwise indicates a right turn at b.
	Clockwise
)

var turnLabels = [3]string{"CounterClockwise", "Collinear", "Clockwise"}

func (t Turn) String() string {
	if t > 1 || t < -1 {
		return fmt.Sprintf("Turn(%d)", int(t))
	}
	return turnLabels[int(t+1)]
}

// Orientation classifies the turn a -> b -> c from the z component of
// (a-b) x (c-b), computed on the points lifted to 3D.
func Orientation(a, b, c Point) Turn {
	va, vb, vc := a.Lift(), b.Lift(), c.Lift()

	// Lifted vectors always have three components, so these cannot fail.
	ba, _ := va.Sub(vb)
	bc, _ := vc.Sub(vb)
	n, _ := ba.Cross(bc)
	z, _ := n.Get(2)

	switch {
	case math.Abs(z) < EPS:
		return Collinear
	case z > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// ByPolarAngle returns a comparator ordering points by polar angle around
// pivot, sweeping clockwise. It is only a strict weak order for points within
// a half-plane of pivot. Use with slices.SortFunc.
func ByPolarAngle(pivot Point) func(a, b Point) int {
	return func(a, b Point) int {
		return -int(Orientation(pivot, a, b))
	}
}
