// Package vector provides a fixed-length float64 vector with elementwise
// arithmetic, dot and cross products and the Euclidean norm.
//
// Arithmetic never mutates its operands; every operation returns a new Vector.
// Binary operations require operands of equal length and report
// *ErrDimensionMismatch otherwise. The only mutating operations are Set,
// Uniform and the one-element resizes (ExpandStart, ExpandEnd, ShrinkStart,
// ShrinkEnd).
//
// # Usage
//
//	a := vector.Of(1, 2, 0)
//	b := vector.Of(0, 1, 0)
//	c, err := a.Cross(b) // (0, 0, 1)
//	n := a.Length()      // sqrt(5)
package vector
