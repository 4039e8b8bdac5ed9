package nearpair

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/nearpair/blobstore"
	"github.com/hupe1980/nearpair/closest"
	"github.com/hupe1980/nearpair/geom"
	"github.com/hupe1980/nearpair/table"
	"github.com/hupe1980/nearpair/vector"
)

// Pair is the result of a closest-pair search.
type Pair = closest.Pair

// Solver computes closest pairs and reports on them.
type Solver struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Solver.
func New(optFns ...Option) *Solver {
	o := applyOptions(optFns)
	return &Solver{
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Solve returns the closest pair among points. It fails with ErrInvalidInput
// when fewer than two points are given. points is not modified.
func (s *Solver) Solve(ctx context.Context, points []geom.Point) (Pair, error) {
	if err := ctx.Err(); err != nil {
		return Pair{}, err
	}

	start := time.Now()
	pair, err := closest.Find(points)
	err = translateError(err)

	s.metrics.RecordSolve(len(points), time.Since(start), err)
	s.logger.LogSolve(ctx, len(points), pair.Distance, err)

	if err != nil {
		return Pair{}, err
	}
	return pair, nil
}

// SolveVectors is like Solve for two-component vectors. A vector of any other
// length fails with *ErrDimensionMismatch naming its index.
func (s *Solver) SolveVectors(ctx context.Context, vectors []vector.Vector) (Pair, error) {
	start := time.Now()
	points := make([]geom.Point, len(vectors))
	for i, v := range vectors {
		p, err := geom.FromVector(v)
		if err != nil {
			err = translateError(err)
			if dm, ok := err.(*ErrDimensionMismatch); ok {
				dm.Index = i
			}
			s.metrics.RecordSolve(len(vectors), time.Since(start), err)
			s.logger.LogSolve(ctx, len(vectors), 0, err)
			return Pair{}, err
		}
		points[i] = p
	}
	return s.Solve(ctx, points)
}

// Table returns the inspection table for a solved input: one row (x, y) per
// input point followed by the two points of pair.
func (s *Solver) Table(points []geom.Point, pair Pair) [][]float64 {
	rows := make([][]float64, 0, len(points)+2)
	rows = append(rows, table.FromPoints(points)...)
	return append(rows, table.FromPoints([]geom.Point{pair.P, pair.Q})...)
}

// Export writes the inspection table for points and pair to store under name.
func (s *Solver) Export(ctx context.Context, store blobstore.BlobStore, name string, points []geom.Point, pair Pair, opts table.Options) error {
	rows := s.Table(points, pair)

	start := time.Now()
	err := table.Write(ctx, store, name, rows, opts)
	if err != nil {
		err = fmt.Errorf("export %s: %w", name, err)
	}

	s.metrics.RecordExport(len(rows), time.Since(start), err)
	s.logger.LogExport(ctx, name, len(rows), err)
	return err
}

// Report is a serialisable summary of one solve.
type Report struct {
	Name     string        `json:"name,omitempty"`
	Count    int           `json:"count"`
	P        geom.Point    `json:"p"`
	Q        geom.Point    `json:"q"`
	Indices  [2]int        `json:"indices"`
	Distance float64       `json:"distance"`
	Elapsed  time.Duration `json:"elapsed_ns,omitempty"`
}

// Report summarises a solve of points that produced pair.
func (s *Solver) Report(points []geom.Point, pair Pair) Report {
	return Report{
		Count:    len(points),
		P:        pair.P,
		Q:        pair.Q,
		Indices:  [2]int{pair.I, pair.J},
		Distance: pair.Distance,
	}
}
