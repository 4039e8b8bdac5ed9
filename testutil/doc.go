// Package testutil provides testing utilities for nearpair.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating point sets with known structure and for
// computing the exact closest distance by exhaustive comparison.
//
// # Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, -100, 100)
//	grid := testutil.Lattice(8, 8, 1.5) // every neighbour at the same distance
//
// # Ground Truth
//
//	i, j, d := testutil.ExactClosest(pts)
package testutil
