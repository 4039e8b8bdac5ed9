package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a resize would leave the vector empty.
var ErrInvalidState = errors.New("vector cannot be further shrunk")

// ErrDimensionMismatch indicates an operation between vectors of incompatible length.
//
// Op names the operation ("add", "dot", "cross", ...). Expected is the length the
// operation required and Actual the length it got.
type ErrDimensionMismatch struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates component access outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
