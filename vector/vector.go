package vector

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Vector is an ordered, fixed-length sequence of float64 components.
//
// The zero value is an empty vector. Copying a Vector shares its components;
// use Clone for an independent copy.
type Vector struct {
	data []float64
}

// New returns a vector with n components, all zero.
func New(n int) Vector {
	return Vector{data: make([]float64, n)}
}

// Of returns a vector holding a copy of components.
func Of(components ...float64) Vector {
	return Vector{data: slices.Clone(components)}
}

// Len returns the number of components.
func (v Vector) Len() int {
	return len(v.data)
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	return slices.Clone(v.data)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return Of(v.data...)
}

// Get returns the component at index i.
func (v Vector) Get(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, &ErrIndexOutOfRange{Index: i, Length: len(v.data)}
	}
	return v.data[i], nil
}

// Set replaces the component at index i.
func (v Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return &ErrIndexOutOfRange{Index: i, Length: len(v.data)}
	}
	v.data[i] = value
	return nil
}

// Uniform sets every component to value.
func (v Vector) Uniform(value float64) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Dot returns the sum of the elementwise products of v and other.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := v.sameLen("dot", other); err != nil {
		return 0, err
	}
	var sum float64
	for i, x := range v.data {
		sum += x * other.data[i]
	}
	return sum, nil
}

// Cross returns the cross product of two 3-component vectors.
//
// 2D inputs are rejected; lift them first by appending a zero component.
func (v Vector) Cross(other Vector) (Vector, error) {
	if len(v.data) != 3 {
		return Vector{}, &ErrDimensionMismatch{Op: "cross", Expected: 3, Actual: len(v.data)}
	}
	if len(other.data) != 3 {
		return Vector{}, &ErrDimensionMismatch{Op: "cross", Expected: 3, Actual: len(other.data)}
	}
	a, b := v.data, other.data
	return Vector{data: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Add returns v + other.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.zip("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.zip("sub", other, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise product of v and other.
func (v Vector) Mul(other Vector) (Vector, error) {
	return v.zip("mul", other, func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient of v and other.
// Division by a zero component follows IEEE 754.
func (v Vector) Div(other Vector) (Vector, error) {
	return v.zip("div", other, func(a, b float64) float64 { return a / b })
}

// AddScalar adds s to every component.
func (v Vector) AddScalar(s float64) Vector {
	return v.each(func(a float64) float64 { return a + s })
}

// SubScalar subtracts s from every component.
func (v Vector) SubScalar(s float64) Vector {
	return v.each(func(a float64) float64 { return a - s })
}

// MulScalar multiplies every component by s.
func (v Vector) MulScalar(s float64) Vector {
	return v.each(func(a float64) float64 { return a * s })
}

// DivScalar divides every component by s.
func (v Vector) DivScalar(s float64) Vector {
	return v.each(func(a float64) float64 { return a / s })
}

// ExpandStart prepends value, growing v by one component.
func (v *Vector) ExpandStart(value float64) {
	data := make([]float64, len(v.data)+1)
	data[0] = value
	copy(data[1:], v.data)
	v.data = data
}

// ExpandEnd appends value, growing v by one component.
func (v *Vector) ExpandEnd(value float64) {
	data := make([]float64, len(v.data), len(v.data)+1)
	copy(data, v.data)
	v.data = append(data, value)
}

// ShrinkStart removes the first component.
// It returns ErrInvalidState if v has a single component.
func (v *Vector) ShrinkStart() error {
	if len(v.data) <= 1 {
		return ErrInvalidState
	}
	v.data = slices.Clone(v.data[1:])
	return nil
}

// ShrinkEnd removes the last component.
// It returns ErrInvalidState if v has a single component.
func (v *Vector) ShrinkEnd() error {
	if len(v.data) <= 1 {
		return ErrInvalidState
	}
	v.data = slices.Clone(v.data[:len(v.data)-1])
	return nil
}

// String formats v as "(a, b, c)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (v Vector) sameLen(op string, other Vector) error {
	if len(v.data) != len(other.data) {
		return &ErrDimensionMismatch{Op: op, Expected: len(v.data), Actual: len(other.data)}
	}
	return nil
}

func (v Vector) zip(op string, other Vector, fn func(a, b float64) float64) (Vector, error) {
	if err := v.sameLen(op, other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	for i, a := range v.data {
		out[i] = fn(a, other.data[i])
	}
	return Vector{data: out}, nil
}

func (v Vector) each(fn func(a float64) float64) Vector {
	out := make([]float64, len(v.data))
	for i, a := range v.data {
		out[i] = fn(a)
	}
	return Vector{data: out}
}
