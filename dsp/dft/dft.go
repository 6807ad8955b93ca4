// Package dft evaluates the Discrete Fourier Transform directly.
//
// The forward transform of a length-N sequence x is
//
//	X[k] = sum_{n=0}^{N-1} x[n] * exp(+2*pi*i*k*n/N)
//
// and the inverse divides the opposite-sign sum by N. Both are computed by
// building the full N x N transform matrix and multiplying it with the input,
// which costs O(N^2) time and memory but places no restriction on N.
//
// The forward kernel has a positive exponent. For real input X[k] is
// therefore the complex conjugate of what gonum, FFTW or algo-fft report:
// magnitudes agree, phases are negated.
//
// The one-shot functions [Forward], [Inverse] and [InverseReal] build a fresh
// matrix per call. Callers transforming many sequences of the same length can
// hold a [Plan] instead.
package dft

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/dsp/cvec"
)

// ErrEmptyInput is returned for zero-length sequences.
var ErrEmptyInput = errors.New("dft: empty input")

// Direction selects the sign of the transform kernel exponent.
type Direction int

const (
	// DirForward uses exp(+2*pi*i*j*k/N).
	DirForward Direction = iota
	// DirInverse uses exp(-2*pi*i*j*k/N). The 1/N factor is not part of
	// the matrix.
	DirInverse
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirInverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Matrix builds the n x n transform matrix for the given direction,
// entry(r, c) = exp(i*w*r*c) with w = +2*pi/n (forward) or -2*pi/n (inverse).
func Matrix(n int, dir Direction) (cvec.Matrix, error) {
	if n <= 0 {
		return cvec.Matrix{}, fmt.Errorf("%w: matrix size %d", ErrEmptyInput, n)
	}

	w := 2 * math.Pi / float64(n)
	if dir == DirInverse {
		w = -w
	}

	// entry(r, c) only depends on r*c mod n.
	roots := make([]complex128, n)
	for k := range roots {
		sin, cos := math.Sincos(w * float64(k))
		roots[k] = complex(cos, sin)
	}

	m := cvec.NewMatrix(n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			row[j] = roots[(i*j)%n]
		}
	}
	return m, nil
}

// Forward returns the DFT of x.
func Forward(x []complex128) ([]complex128, error) {
	m, err := Matrix(len(x), DirForward)
	if err != nil {
		return nil, err
	}
	return cvec.MulMatVec(m, x)
}

// Inverse returns the inverse DFT of x, including the 1/N scale.
func Inverse(x []complex128) ([]complex128, error) {
	y, err := inverseUnscaled(x)
	if err != nil {
		return nil, err
	}
	return cvec.Scale(y, 1/float64(len(x))), nil
}

// InverseReal returns the real part of the inverse DFT of x. Residual
// imaginary components are dropped.
func InverseReal(x []complex128) ([]float64, error) {
	y, err := inverseUnscaled(x)
	if err != nil {
		return nil, err
	}
	return cvec.RealParts(y, 1/float64(len(x))), nil
}

func inverseUnscaled(x []complex128) ([]complex128, error) {
	m, err := Matrix(len(x), DirInverse)
	if err != nil {
		return nil, err
	}
	return cvec.MulMatVec(m, x)
}
