// Package cvec provides elementwise and matrix-vector arithmetic over
// complex128 sequences.
//
// The helpers back the naive and fast Fourier engines. Every function
// allocates and returns a fresh result; inputs are never modified.
// Operand shape disagreements are reported as errors wrapping
// [ErrLengthMismatch] or [ErrNotSquare]; shapes are checked before any
// gonum kernel runs, so its length panics are never reached.
package cvec

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
)

// Errors returned by vector and matrix operations.
var (
	ErrEmpty          = errors.New("cvec: empty operand")
	ErrLengthMismatch = errors.New("cvec: length mismatch")
	ErrNotSquare      = errors.New("cvec: matrix is not square")
)

// Matrix is a dense row-major square complex matrix stored contiguously.
// The zero value is an empty matrix.
type Matrix struct {
	g cblas128.General
}

// NewMatrix allocates an n x n zero matrix. It returns the empty matrix for
// n <= 0.
func NewMatrix(n int) Matrix {
	if n <= 0 {
		return Matrix{}
	}
	return Matrix{g: cblas128.General{
		Rows:   n,
		Cols:   n,
		Stride: n,
		Data:   make([]complex128, n*n),
	}}
}

// FromRows copies rows into a new Matrix. rows must be non-empty and square.
func FromRows(rows [][]complex128) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, ErrEmpty
	}
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}

	m := NewMatrix(n)
	for i, row := range rows {
		copy(m.Row(i), row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.g.Rows }

// Row returns row i as a view into the matrix storage. Appending to the
// returned slice never reaches the next row.
func (m Matrix) Row(i int) []complex128 {
	start := i * m.g.Stride
	end := start + m.g.Cols
	return m.g.Data[start:end:end]
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) complex128 { return m.g.Data[i*m.g.Stride+j] }

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v complex128) { m.g.Data[i*m.g.Stride+j] = v }

// Validate reports whether m is a non-empty square matrix.
func (m Matrix) Validate() error {
	if m.g.Rows == 0 {
		return ErrEmpty
	}
	if m.g.Cols != m.g.Rows {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, m.g.Rows, m.g.Cols)
	}
	return nil
}

// Add returns a + b elementwise.
func Add(a, b []complex128) ([]complex128, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: add %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return cmplxs.AddTo(make([]complex128, len(a)), a, b), nil
}

// Mul returns a * b elementwise.
func Mul(a, b []complex128) ([]complex128, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: mul %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return cmplxs.MulTo(make([]complex128, len(a)), a, b), nil
}

// MulMatVec returns m*v, where out[i] = sum_j m[i][j]*v[j].
// m must be square with as many rows as v has elements.
func MulMatVec(m Matrix, v []complex128) ([]complex128, error) {
	out := make([]complex128, len(v))
	if err := MulMatVecTo(out, m, v); err != nil {
		return nil, err
	}
	return out, nil
}

// MulMatVecTo computes m*v into dst. dst must not alias v.
func MulMatVecTo(dst []complex128, m Matrix, v []complex128) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n := m.Rows()
	if n != len(v) {
		return fmt.Errorf("%w: matrix %dx%d, vector %d", ErrLengthMismatch, n, n, len(v))
	}
	if len(dst) != len(v) {
		return fmt.Errorf("%w: dst %d, vector %d", ErrLengthMismatch, len(dst), len(v))
	}

	x := cblas128.Vector{N: n, Inc: 1, Data: v}
	y := cblas128.Vector{N: n, Inc: 1, Data: dst}
	cblas128.Gemv(blas.NoTrans, 1, m.g, x, 0, y)
	return nil
}

// Conj returns the complex conjugate of every element of x.
func Conj(x []complex128) []complex128 {
	// cmplxs has no plain conjugate kernel.
	out := make([]complex128, len(x))
	for i, c := range x {
		out[i] = complex(real(c), -imag(c))
	}
	return out
}

// Scale returns x multiplied by the real factor s.
func Scale(x []complex128, s float64) []complex128 {
	return cmplxs.ScaleRealTo(make([]complex128, len(x)), s, x)
}

// FromReal lifts a real sequence into complex form with zero imaginary parts.
func FromReal(x []float64) []complex128 {
	return cmplxs.Complex(make([]complex128, len(x)), x, make([]float64, len(x)))
}

// RealParts returns real(x[i])*scale for every element. Imaginary parts are
// discarded.
func RealParts(x []complex128, scale float64) []float64 {
	out := cmplxs.Real(make([]float64, len(x)), x)
	if scale != 1 {
		vecmath.ScaleBlockInPlace(out, scale)
	}
	return out
}
