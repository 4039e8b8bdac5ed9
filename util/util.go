// Package util provides seeded random generation of numbers and points.
package util

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/nearpair/geom"
)

// Integer is satisfied by all built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by all built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by all built-in integer and floating-point types.
type Number interface {
	Integer | Float
}

// RNG struct encapsulates the random number generator and seed.
// It is safe for concurrent use.
type RNG struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Int63n returns a pseudo-random number in [0, n). It panics if n <= 0.
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Points generates n points with both coordinates drawn from [lo, hi).
func (r *RNG) Points(n int, lo, hi float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(lo+r.rand.Float64()*span, lo+r.rand.Float64()*span)
	}
	return pts
}

// InRange returns a random value between lo and hi.
//
// For integer types both bounds are inclusive. For floating-point types the
// result lies in [lo, hi). It panics if hi < lo.
func InRange[T Number](r *RNG, lo, hi T) T {
	if hi < lo {
		panic("util: InRange called with hi < lo")
	}
	if hi == lo {
		return lo
	}
	if integral[T]() {
		// T's own arithmetic wraps, so the offset added to lo lands in range
		// for signed types as well.
		return lo + T(r.uint64n(uint64(hi)-uint64(lo)))
	}

	f := r.Float64()
	// Interpolating keeps ranges wider than the largest T finite.
	v := T(float64(lo)*(1-f) + float64(hi)*f)
	if v >= hi || v < lo {
		return lo
	}
	return v
}

// uint64n returns a pseudo-random number in [0, span].
func (r *RNG) uint64n(span uint64) uint64 {
	if span < math.MaxInt64 {
		return uint64(r.Int63n(int64(span) + 1))
	}
	if span == math.MaxUint64 {
		return r.Uint64()
	}
	for {
		if v := r.Uint64(); v <= span {
			return v
		}
	}
}

// integral reports whether T truncates division, which holds exactly for the
// integer members of Number.
func integral[T Number]() bool {
	one := T(1)
	return one/(one+one) == 0
}
