package nearpair

import (
	"errors"
	"fmt"

	"github.com/hupe1980/nearpair/closest"
	"github.com/hupe1980/nearpair/vector"
)

var (
	// ErrInvalidInput is returned when fewer than two points are given.
	ErrInvalidInput = closest.ErrInvalidInput
)

// ErrDimensionMismatch indicates an input vector that is not two-dimensional.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("input %d: dimension mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *vector.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return err
}
