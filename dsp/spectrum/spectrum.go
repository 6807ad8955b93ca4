package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum helpers.
var (
	ErrEmptyInput        = errors.New("spectrum: empty input")
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
	ErrBinOutOfRange     = errors.New("spectrum: bin index out of range")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each coefficient.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each coefficient.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) in radians for each coefficient.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// OneSided returns a copy of bins 0..N/2 of the transform of a real
// sequence. The remaining bins are conjugates of these and carry no extra
// information.
func OneSided(in []complex128) []complex128 {
	if len(in) == 0 {
		return nil
	}
	out := make([]complex128, len(in)/2+1)
	copy(out, in)
	return out
}

// BinFrequency returns the frequency in Hz of bin k of an n-point transform.
// Bins above n/2 map to negative frequencies.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if k > n/2 {
		k -= n
	}
	return float64(k) * sampleRate / float64(n)
}

// Frequencies returns the frequencies of the one-sided bins 0..n/2.
func Frequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = float64(k) * sampleRate / float64(n)
	}
	return out, nil
}

// Peak returns the index and magnitude of the largest one-sided bin.
// It returns -1 for empty input.
func Peak(in []complex128) (int, float64) {
	if len(in) == 0 {
		return -1, 0
	}
	mags := Magnitude(OneSided(in))
	best := 0
	for k, m := range mags {
		if m > mags[best] {
			best = k
		}
	}
	return best, mags[best]
}
