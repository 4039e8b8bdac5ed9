package closest

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/hupe1980/nearpair/geom"
	"github.com/hupe1980/nearpair/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(coords ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geom.Pt(coords[i], coords[i+1]))
	}
	return out
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name     string
		points   []geom.Point
		p, q     geom.Point
		distance float64
	}{
		{
			name:     "SimpleCase",
			points:   pts(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
			p:        geom.Pt(5, 6),
			q:        geom.Pt(7, 8),
			distance: math.Sqrt(8),
		},
		{
			name:     "NegativeCoordinates",
			points:   pts(-1, -2, -3, -4, -5, -6, -7, -8, -9, -10),
			p:        geom.Pt(-5, -6),
			q:        geom.Pt(-3, -4),
			distance: math.Sqrt(8),
		},
		{
			name:     "MixedCoordinates",
			points:   pts(-1, 2, 0, 0, -5, 6, 7, -8, 9, 10),
			p:        geom.Pt(-1, 2),
			q:        geom.Pt(0, 0),
			distance: math.Sqrt(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := Find(tt.points)
			require.NoError(t, err)

			assert.True(t, testutil.SamePair(pair.P, pair.Q, tt.p, tt.q), "got %v", pair)
			assert.InDelta(t, tt.distance, pair.Distance, 1e-12)
			assert.Equal(t, tt.points[pair.I], pair.P)
			assert.Equal(t, tt.points[pair.J], pair.Q)
		})
	}
}

func TestFindInvalidInput(t *testing.T) {
	for _, in := range [][]geom.Point{nil, {}, pts(1, 1)} {
		_, err := Find(in)
		assert.True(t, errors.Is(err, ErrInvalidInput))

		_, err = BruteForce(in)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestFindTwoPoints(t *testing.T) {
	in := pts(3, 4, 0, 0)
	pair, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, 5.0, pair.Distance)
	assert.NotEqual(t, pair.I, pair.J)
	assert.ElementsMatch(t, []int{0, 1}, []int{pair.I, pair.J})
}

func TestFindMatchesBruteForceOnSmallSets(t *testing.T) {
	sets := [][]geom.Point{
		pts(0, 0, 5, 5),
		pts(0, 0, 5, 5, 1, 1),
		pts(9, 9, -1, 4, 3, 3),
		pts(1, 1, 1, 1, 2, 2),
	}

	for _, s := range sets {
		fast, err := Find(s)
		require.NoError(t, err)
		slow, err := BruteForce(s)
		require.NoError(t, err)

		assert.Equal(t, slow.Distance, fast.Distance)
		assert.True(t, testutil.SamePair(fast.P, fast.Q, slow.P, slow.Q), "fast %v, slow %v", fast, slow)
	}
}

func TestFindMatchesExactDistance(t *testing.T) {
	rng := testutil.NewRNG(4711)

	generators := map[string]func(n int) []geom.Point{
		"Uniform":   func(n int) []geom.Point { return rng.UniformPoints(n, -1000, 1000) },
		"Integer":   func(n int) []geom.Point { return rng.IntegerPoints(n, 20) },
		"Clustered": func(n int) []geom.Point { return rng.ClusteredPoints(n, 4, 0.5) },
		"Narrow":    func(n int) []geom.Point { return rng.UniformPoints(n, 0, 1e-3) },
	}

	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{2, 3, 4, 5, 7, 16, 33, 100, 257} {
				in := gen(n)
				pair, err := Find(in)
				require.NoError(t, err)

				_, _, exact := testutil.ExactClosest(in)
				require.Equal(t, exact, pair.Distance, "n=%d", n)
				require.NotEqual(t, pair.I, pair.J)
				require.Equal(t, geom.Distance(in[pair.I], in[pair.J]), pair.Distance)
			}
		})
	}
}

func TestFindPermutationInvariant(t *testing.T) {
	rng := testutil.NewRNG(99)
	in := rng.UniformPoints(200, -50, 50)

	want, err := Find(in)
	require.NoError(t, err)

	for range 5 {
		got, err := Find(rng.Shuffle(in))
		require.NoError(t, err)
		assert.Equal(t, want.Distance, got.Distance)
	}
}

func TestFindDuplicates(t *testing.T) {
	rng := testutil.NewRNG(7)
	in := rng.UniformPoints(64, 0, 100)
	dup := in[17]
	in = append(in, dup)

	pair, err := Find(in)
	require.NoError(t, err)

	assert.Equal(t, 0.0, pair.Distance)
	assert.Equal(t, dup, pair.P)
	assert.Equal(t, dup, pair.Q)
	assert.NotEqual(t, pair.I, pair.J)
	assert.ElementsMatch(t, []int{17, 64}, []int{pair.I, pair.J})
}

func TestFindAllCoincident(t *testing.T) {
	in := make([]geom.Point, 10)
	for i := range in {
		in[i] = geom.Pt(2, 2)
	}

	pair, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pair.Distance)
	assert.NotEqual(t, pair.I, pair.J)
}

func TestFindVerticalLine(t *testing.T) {
	// identical x everywhere: every point lands in the strip
	in := pts(0, 0, 0, 10, 0, 3, 0, 7, 0, 20, 0, 7.5)
	pair, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, 0.5, pair.Distance)
	assert.True(t, testutil.SamePair(pair.P, pair.Q, geom.Pt(0, 7), geom.Pt(0, 7.5)))
}

func TestFindStraddlingPair(t *testing.T) {
	// the closest pair is split across the dividing line
	in := pts(-10, 0, -8, 5, -0.1, 0, 0.1, 0, 8, 5, 10, 0)
	pair, err := Find(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, pair.Distance, 1e-12)
	assert.True(t, testutil.SamePair(pair.P, pair.Q, geom.Pt(-0.1, 0), geom.Pt(0.1, 0)))
}

func TestFindLatticeTies(t *testing.T) {
	in := testutil.Lattice(9, 7, 1.5)
	pair, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, 1.5, pair.Distance)

	again, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, pair, again)
}

func TestFindDoesNotModifyInput(t *testing.T) {
	in := pts(9, 1, 3, 4, -2, 8, 5, 5)
	orig := append([]geom.Point(nil), in...)

	_, err := Find(in)
	require.NoError(t, err)
	assert.Equal(t, orig, in)
}

func TestPairContains(t *testing.T) {
	p := Pair{P: geom.Pt(1, 2), Q: geom.Pt(3, 4)}
	assert.True(t, p.Contains(geom.Pt(3, 4)))
	assert.False(t, p.Contains(geom.Pt(0, 0)))
	assert.Equal(t, "(1, 2) and (3, 4) (distance 0)", p.String())
}

func BenchmarkFind(b *testing.B) {
	rng := testutil.NewRNG(4711)
	for _, n := range []int{100, 10_000} {
		in := rng.UniformPoints(n, 0, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Find(in)
			}
		})
	}
}

func BenchmarkBruteForce(b *testing.B) {
	in := testutil.NewRNG(4711).UniformPoints(1000, 0, 1)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = BruteForce(in)
	}
}
