package dft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/cvec"
)

// Plan holds precomputed forward and inverse matrices for a fixed length.
//
// A Plan is read-only after construction and may be shared between
// goroutines. It costs 2*N^2 complex values of memory.
type Plan struct {
	n       int
	forward cvec.Matrix
	inverse cvec.Matrix
}

// NewPlan precomputes the transform matrices for length n.
func NewPlan(n int) (*Plan, error) {
	fwd, err := Matrix(n, DirForward)
	if err != nil {
		return nil, err
	}
	inv, err := Matrix(n, DirInverse)
	if err != nil {
		return nil, err
	}
	return &Plan{n: n, forward: fwd, inverse: inv}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward returns the DFT of x. len(x) must equal Len().
func (p *Plan) Forward(x []complex128) ([]complex128, error) {
	if err := p.check(x); err != nil {
		return nil, err
	}
	return cvec.MulMatVec(p.forward, x)
}

// Inverse returns the scaled inverse DFT of x.
func (p *Plan) Inverse(x []complex128) ([]complex128, error) {
	if err := p.check(x); err != nil {
		return nil, err
	}
	y, err := cvec.MulMatVec(p.inverse, x)
	if err != nil {
		return nil, err
	}
	return cvec.Scale(y, 1/float64(p.n)), nil
}

// InverseReal returns the real part of the scaled inverse DFT of x.
func (p *Plan) InverseReal(x []complex128) ([]float64, error) {
	if err := p.check(x); err != nil {
		return nil, err
	}
	y, err := cvec.MulMatVec(p.inverse, x)
	if err != nil {
		return nil, err
	}
	return cvec.RealParts(y, 1/float64(p.n)), nil
}

func (p *Plan) check(x []complex128) error {
	if len(x) != p.n {
		return fmt.Errorf("%w: plan length %d, input %d", cvec.ErrLengthMismatch, p.n, len(x))
	}
	return nil
}
