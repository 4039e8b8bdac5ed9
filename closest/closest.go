// Package closest finds the closest pair of points in the plane.
//
// Find implements the O(n log n) divide-and-conquer algorithm: the input is
// copied and sorted by x, split at the median index, solved recursively, and
// merged by scanning the strip of points whose x lies within the current best
// distance of the dividing line. The strip is swept in y order and each point
// is only compared with successors whose y difference is below the best
// distance, which bounds the comparisons per point by a constant.
//
// Every recursive call returns its own best pair. Nothing is shared between
// calls, so Find is safe for concurrent use on independent inputs.
//
// Ties are resolved deterministically. When both halves yield the same
// distance the right half's pair is kept. A strip pair replaces the halves'
// pair only when strictly closer, and within each scan the first pair found
// is kept.
package closest

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/nearpair/geom"
)

// BruteForceThreshold is the largest range solved by exhaustive comparison.
const BruteForceThreshold = 3

// ErrInvalidInput is returned when fewer than two points are supplied.
var ErrInvalidInput = errors.New("closest pair requires at least 2 points")

// Pair is the result of a closest-pair search.
//
// I and J are the indices of P and Q in the caller's input. They always differ,
// even when P and Q are coincident.
type Pair struct {
	P, Q     geom.Point
	I, J     int
	Distance float64
}

// Contains reports whether q is one of the two points of the pair.
func (p Pair) Contains(q geom.Point) bool {
	return p.P.Equal(q) || p.Q.Equal(q)
}

func (p Pair) String() string {
	return fmt.Sprintf("%v and %v (distance %g)", p.P, p.Q, p.Distance)
}

// indexed carries a point together with its position in the caller's input.
type indexed struct {
	geom.Point
	idx int
}

// Find returns the two points of points that are closest to each other.
func Find(points []geom.Point) (Pair, error) {
	if err := validate(points); err != nil {
		return Pair{}, err
	}

	byX := make([]indexed, len(points))
	for i, p := range points {
		byX[i] = indexed{Point: p, idx: i}
	}
	slices.SortStableFunc(byX, func(a, b indexed) int { return cmp.Compare(a.X, b.X) })

	return solveRange(byX, make([]indexed, 0, len(byX))), nil
}

// BruteForce returns the closest pair by comparing every pair of points.
func BruteForce(points []geom.Point) (Pair, error) {
	if err := validate(points); err != nil {
		return Pair{}, err
	}

	best := Pair{Distance: math.Inf(1)}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := geom.Distance(points[i], points[j]); d < best.Distance {
				best = Pair{P: points[i], Q: points[j], I: i, J: j, Distance: d}
			}
		}
	}
	return best, nil
}

func validate(points []geom.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidInput, len(points))
	}
	return nil
}

// solveRange returns the closest pair within pts, which must be sorted by x
// and hold at least two points. scratch is reused as strip storage; its
// capacity must be at least len(pts).
func solveRange(pts []indexed, scratch []indexed) Pair {
	n := len(pts)
	if n <= BruteForceThreshold {
		return bruteForceRange(pts)
	}

	mid := n / 2
	midX := pts[mid].X

	best := solveRange(pts[:mid], scratch)
	if right := solveRange(pts[mid:], scratch); right.Distance <= best.Distance {
		best = right
	}

	// The recursive calls above are done with scratch, so the strip can reuse it.
	strip := scratch[:0]
	for _, p := range pts {
		if math.Abs(p.X-midX) < best.Distance {
			strip = append(strip, p)
		}
	}
	slices.SortStableFunc(strip, func(a, b indexed) int { return cmp.Compare(a.Y, b.Y) })

	for i := range strip {
		for k := i + 1; k < len(strip) && strip[k].Y-strip[i].Y < best.Distance; k++ {
			if d := geom.Distance(strip[i].Point, strip[k].Point); d < best.Distance {
				best = newPair(strip[i], strip[k], d)
			}
		}
	}

	return best
}

func bruteForceRange(pts []indexed) Pair {
	best := Pair{Distance: math.Inf(1)}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := geom.Distance(pts[i].Point, pts[j].Point); d < best.Distance {
				best = newPair(pts[i], pts[j], d)
			}
		}
	}
	return best
}

func newPair(a, b indexed, d float64) Pair {
	return Pair{P: a.Point, Q: b.Point, I: a.idx, J: b.idx, Distance: d}
}
