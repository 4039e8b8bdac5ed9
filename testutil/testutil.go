package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/nearpair/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates n points with coordinates in [lo, hi).
func (r *RNG) UniformPoints(n int, lo, hi float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(lo+r.rand.Float64()*span, lo+r.rand.Float64()*span)
	}
	return pts
}

// IntegerPoints generates n points with integer coordinates in [0, size).
// Small sizes produce many coincident points and distance ties.
func (r *RNG) IntegerPoints(n, size int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(float64(r.rand.Intn(size)), float64(r.rand.Intn(size)))
	}
	return pts
}

// ClusteredPoints generates n points scattered around a few random centres.
// Clusters place many candidates inside the merge strip.
func (r *RNG) ClusteredPoints(n, clusters int, spread float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centres := make([]geom.Point, clusters)
	for i := range centres {
		centres[i] = geom.Pt(r.rand.Float64()*1000, r.rand.Float64()*1000)
	}

	pts := make([]geom.Point, n)
	for i := range pts {
		c := centres[i%clusters]
		pts[i] = geom.Pt(c.X+r.rand.NormFloat64()*spread, c.Y+r.rand.NormFloat64()*spread)
	}
	return pts
}

// Shuffle returns a shuffled copy of pts.
func (r *RNG) Shuffle(pts []geom.Point) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]geom.Point(nil), pts...)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Lattice returns a cols x rows grid with the given spacing. Every pair of
// horizontal or vertical neighbours is exactly spacing apart.
func Lattice(cols, rows int, spacing float64) []geom.Point {
	pts := make([]geom.Point, 0, cols*rows)
	for y := range rows {
		for x := range cols {
			pts = append(pts, geom.Pt(float64(x)*spacing, float64(y)*spacing))
		}
	}
	return pts
}

// ExactClosest returns the indices and distance of the closest pair in pts by
// comparing every pair. It returns (-1, -1, +Inf) for fewer than two points.
func ExactClosest(pts []geom.Point) (int, int, float64) {
	bi, bj, best := -1, -1, math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := geom.Distance(pts[i], pts[j]); d < best {
				bi, bj, best = i, j, d
			}
		}
	}
	return bi, bj, best
}

// SamePair reports whether {a1, a2} and {b1, b2} hold the same points,
// ignoring order.
func SamePair(a1, a2, b1, b2 geom.Point) bool {
	return (a1.Equal(b1) && a2.Equal(b2)) || (a1.Equal(b2) && a2.Equal(b1))
}
