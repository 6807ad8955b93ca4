// Package fft implements a recursive radix-2 Cooley-Tukey transform.
//
// [Forward] computes the same coefficients as [dft.Forward] in O(N log N)
// time, but only for lengths that are powers of two. Each level splits the
// input into even- and odd-indexed halves, transforms both, and recombines
// them with a table of twiddle factors
//
//	t[k] = exp(+2*pi*i*k/N), k = 0..N-1
//
// as X[k] = E[k mod N/2] + t[k]*O[k mod N/2]. Lengths 1 and 2 are handed to
// the direct DFT.
//
// [Inverse] uses the identity IFFT(X) = conj(FFT(conj(X)))/N and shares the
// forward recursion.
package fft

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-dft/dsp/cvec"
	"github.com/cwbudde/algo-dft/dsp/dft"
)

// ErrInvalidSize is returned when a transform length is not a power of two.
var ErrInvalidSize = errors.New("fft: invalid transform size")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// CheckSize returns an error wrapping [ErrInvalidSize] unless n is a valid
// transform length.
func CheckSize(n int) error {
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: length %d is not a power of two", ErrInvalidSize, n)
	}
	return nil
}

// Twiddles returns exp(+2*pi*i*k/n) for k in [0, n).
func Twiddles(n int) []complex128 {
	t := make([]complex128, n)
	step := 2 * math.Pi / float64(n)
	for k := range t {
		sin, cos := math.Sincos(step * float64(k))
		t[k] = complex(cos, sin)
	}
	return t
}

// Forward returns the transform of x. len(x) must be a power of two.
// Odd lengths are detected where they first appear in the recursion, so a
// length like 12 fails once the split reaches 3.
func Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: length 0", ErrInvalidSize)
	}
	return forward(x)
}

// Inverse returns the scaled inverse transform of x.
func Inverse(x []complex128) ([]complex128, error) {
	y, err := Forward(cvec.Conj(x))
	if err != nil {
		return nil, err
	}
	return cvec.Scale(cvec.Conj(y), 1/float64(len(x))), nil
}

// InverseReal returns the real part of the scaled inverse transform of x.
func InverseReal(x []complex128) ([]float64, error) {
	y, err := Forward(cvec.Conj(x))
	if err != nil {
		return nil, err
	}
	// Conjugation leaves real parts untouched.
	return cvec.RealParts(y, 1/float64(len(x))), nil
}

func forward(x []complex128) ([]complex128, error) {
	n := len(x)
	if n <= 2 {
		return dft.Forward(x)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a power of two", ErrInvalidSize, n)
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	e, err := forward(even)
	if err != nil {
		return nil, err
	}
	o, err := forward(odd)
	if err != nil {
		return nil, err
	}

	t := Twiddles(n)
	lo, err := combine(e, o, t[:half])
	if err != nil {
		return nil, err
	}
	hi, err := combine(e, o, t[half:])
	if err != nil {
		return nil, err
	}
	return append(lo, hi...), nil
}

// combine returns e + o*t. t[half:] equals -t[:half], which gives the
// subtracting half of the butterfly.
func combine(e, o, t []complex128) ([]complex128, error) {
	ot, err := cvec.Mul(o, t)
	if err != nil {
		return nil, err
	}
	return cvec.Add(e, ot)
}
