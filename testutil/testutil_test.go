package testutil

import (
	"math"
	"testing"

	"github.com/hupe1980/nearpair/geom"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(8, -1, 1)

	assert.Len(t, pts, 8)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.Less(t, p.Y, 1.0)
	}
}

func TestIntegerPoints(t *testing.T) {
	pts := NewRNG(4711).IntegerPoints(50, 3)
	for _, p := range pts {
		assert.Equal(t, math.Trunc(p.X), p.X)
		assert.Less(t, p.Y, 3.0)
	}
}

func TestClusteredPoints(t *testing.T) {
	pts := NewRNG(4711).ClusteredPoints(100, 5, 0.1)
	assert.Len(t, pts, 100)
}

func TestShuffleKeepsPoints(t *testing.T) {
	rng := NewRNG(4711)
	pts := Lattice(4, 4, 1)

	shuffled := rng.Shuffle(pts)

	assert.ElementsMatch(t, pts, shuffled)
	assert.Equal(t, Lattice(4, 4, 1), pts)
}

func TestLattice(t *testing.T) {
	pts := Lattice(3, 2, 2)
	assert.Equal(t, []geom.Point{
		geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(4, 0),
		geom.Pt(0, 2), geom.Pt(2, 2), geom.Pt(4, 2),
	}, pts)
}

func TestExactClosest(t *testing.T) {
	i, j, d := ExactClosest([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(1, 1)})
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)

	i, j, d = ExactClosest([]geom.Point{geom.Pt(0, 0)})
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	assert.True(t, math.IsInf(d, 1))
}

func TestSamePair(t *testing.T) {
	a, b, c := geom.Pt(1, 2), geom.Pt(3, 4), geom.Pt(5, 6)
	assert.True(t, SamePair(a, b, a, b))
	assert.True(t, SamePair(a, b, b, a))
	assert.False(t, SamePair(a, b, a, c))
}
