// Package fourier provides the real-valued Fourier transform entry points.
//
// Four functions cover the transform pair with two algorithms:
//
//	X, err := fourier.DFT(x)   // direct O(N^2), any N >= 1
//	x, err := fourier.IDFT(X)
//	X, err := fourier.FFT(x)   // radix-2 O(N log N), N a power of two
//	x, err := fourier.IFFT(X)
//
// The forward functions lift the real input to complex form; the inverse
// functions scale by 1/N and return only the real part. For any valid x,
// IDFT(DFT(x)) and IFFT(FFT(x)) reproduce x within floating-point error, and
// DFT and FFT agree wherever both apply.
//
// [Transform] and [InverseTransform] pick the algorithm from options,
// defaulting to radix-2 for power-of-two lengths and the direct method
// otherwise.
//
// The forward kernel is exp(+2*pi*i*k*n/N); see package dft.
//
// # Errors
//
// Nothing here panics on bad input. Empty input yields [ErrEmptyInput],
// FFT/IFFT on a length that is not a power of two yield an error wrapping
// [ErrInvalidSize], and internal shape disagreements wrap
// [ErrDimensionMismatch] or [ErrNotSquare]. [ErrEmptyOperand] comes from the
// vector layer; the entry points here reject empty input with
// [ErrEmptyInput] before it can be reached. No partial result accompanies an
// error.
package fourier

import (
	"errors"

	"github.com/cwbudde/algo-dft/dsp/cvec"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/dsp/fft"
)

// Errors returned by the transform functions.
var (
	ErrEmptyInput        = dft.ErrEmptyInput
	ErrInvalidSize       = fft.ErrInvalidSize
	ErrDimensionMismatch = cvec.ErrLengthMismatch
	ErrNotSquare         = cvec.ErrNotSquare
	ErrEmptyOperand      = cvec.ErrEmpty
	ErrUnknownAlgorithm  = errors.New("fourier: unknown algorithm")
)

// DFT returns the discrete Fourier transform of x by direct evaluation.
func DFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return dft.Forward(cvec.FromReal(x))
}

// IDFT returns the real part of the inverse DFT of X by direct evaluation.
func IDFT(X []complex128) ([]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}
	return dft.InverseReal(X)
}

// FFT returns the discrete Fourier transform of x using the radix-2
// recursion. len(x) must be a power of two.
func FFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return fft.Forward(cvec.FromReal(x))
}

// IFFT returns the real part of the inverse transform of X using the
// radix-2 recursion. len(X) must be a power of two.
func IFFT(X []complex128) ([]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}
	return fft.InverseReal(X)
}

// Transform returns the forward transform of x with the configured algorithm.
func Transform(x []float64, opts ...Option) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := applyOptions(opts...)
	switch cfg.algorithm.resolve(len(x)) {
	case AlgorithmDirect:
		return DFT(x)
	case AlgorithmRadix2:
		return FFT(x)
	default:
		return nil, unknownAlgorithm(cfg.algorithm)
	}
}

// InverseTransform returns the real inverse transform of X with the
// configured algorithm.
func InverseTransform(X []complex128, opts ...Option) ([]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := applyOptions(opts...)
	switch cfg.algorithm.resolve(len(X)) {
	case AlgorithmDirect:
		return IDFT(X)
	case AlgorithmRadix2:
		return IFFT(X)
	default:
		return nil, unknownAlgorithm(cfg.algorithm)
	}
}
