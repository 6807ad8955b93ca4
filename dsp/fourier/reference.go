package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dft/dsp/cvec"
)

// Reference computes the forward transform of x with an algo-fft plan and
// converts the result to this package's sign convention. It is an
// independent implementation for cross-checking [DFT] and [FFT].
func Reference(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create reference plan: %w", err)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, cvec.FromReal(x)); err != nil {
		return nil, fmt.Errorf("fourier: reference forward failed: %w", err)
	}

	// Real input: flipping the kernel sign conjugates every bin.
	return cvec.Conj(out), nil
}

// ReferenceInverse computes the real inverse transform of X with an algo-fft
// plan.
func ReferenceInverse(X []complex128) ([]float64, error) {
	if len(X) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan64(len(X))
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create reference plan: %w", err)
	}

	// algo-fft's normalized inverse of conj(X) is the conjugate of ours;
	// real parts agree.
	out := make([]complex128, len(X))
	if err := plan.Inverse(out, cvec.Conj(X)); err != nil {
		return nil, fmt.Errorf("fourier: reference inverse failed: %w", err)
	}
	return cvec.RealParts(out, 1), nil
}
