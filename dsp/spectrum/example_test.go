package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/fourier"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleUnwrapPhase() {
	wrapped := []float64{2.8, -2.7, -2.6}
	unwrapped := spectrum.UnwrapPhase(wrapped)
	fmt.Printf("%.3f %.3f %.3f\n", unwrapped[0], unwrapped[1], unwrapped[2])
	// Output:
	// 2.800 3.583 3.683
}

func ExamplePeak() {
	// Two full cycles of a square-ish wave over 8 samples.
	x := []float64{1, 1, -1, -1, 1, 1, -1, -1}

	X, _ := fourier.FFT(x)
	freqs, _ := spectrum.Frequencies(len(x), 8000)
	k, mag := spectrum.Peak(X)
	fmt.Printf("peak at %.0f Hz, magnitude %.2f\n", freqs[k], mag)
	// Output:
	// peak at 2000 Hz, magnitude 5.66
}

func ExampleGoertzel() {
	x := []float64{0.2, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	g, _ := spectrum.NewGoertzel(len(x), 2)
	g.ProcessBlock(x)
	b := g.Bin()
	fmt.Printf("%.2f%+.2fi\n", real(b), imag(b))
	// Output:
	// -0.30-0.40i
}
