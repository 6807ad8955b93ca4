//nolint:funcorder
package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin of an N-sample block.
//
// After exactly N samples have been processed, [Goertzel.Bin] equals bin k of
// fourier.DFT over the same block, at O(N) cost instead of O(N^2). The
// analyzer is stateful; call Reset before reusing it for another block.
type Goertzel struct {
	n, k     int
	coeff    float64
	cos, sin float64
	s0, s1   float64
}

// NewGoertzel creates an analyzer for bin k of an n-point transform.
func NewGoertzel(n, k int) (*Goertzel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("goertzel: %w: block length %d", ErrEmptyInput, n)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("goertzel: %w: bin %d of %d", ErrBinOutOfRange, k, n)
	}

	w := 2 * math.Pi * float64(k) / float64(n)
	sin, cos := math.Sincos(w)

	return &Goertzel{
		n:     n,
		k:     k,
		coeff: 2 * cos,
		cos:   cos,
		sin:   sin,
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Bin returns the complex coefficient in the positive-exponent convention.
func (g *Goertzel) Bin() complex128 {
	return complex(g.s0*g.cos-g.s1, -g.s0*g.sin)
}

// Power returns |Bin()|^2.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |Bin()|.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Len returns the block length N.
func (g *Goertzel) Len() int { return g.n }

// Index returns the bin index k.
func (g *Goertzel) Index() int { return g.k }

// Bins evaluates the listed bins of the transform of x in one shot.
func Bins(x []float64, ks []int) ([]complex128, error) {
	out := make([]complex128, len(ks))
	for i, k := range ks {
		g, err := NewGoertzel(len(x), k)
		if err != nil {
			return nil, err
		}

		g.ProcessBlock(x)
		out[i] = g.Bin()
	}

	return out, nil
}
