package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/fourier"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=sqrt(2)", mag[1])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 || pow[2] != 0 {
		t.Fatalf("Power = %v", pow)
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
	if math.Abs(phase[1]+3*math.Pi/4) > 1e-12 {
		t.Fatalf("Phase[1]=%f want -3pi/4", phase[1])
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil || OneSided(nil) != nil || UnwrapPhase(nil) != nil {
		t.Fatal("empty input should yield nil")
	}
	if k, _ := Peak(nil); k != -1 {
		t.Fatalf("Peak(nil) index = %d, want -1", k)
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}
	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}
	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestOneSided(t *testing.T) {
	for _, n := range []int{1, 2, 7, 8} {
		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(float64(i), 0)
		}
		out := OneSided(in)
		if len(out) != n/2+1 {
			t.Fatalf("n=%d: len = %d, want %d", n, len(out), n/2+1)
		}
		for i := range out {
			if out[i] != in[i] {
				t.Fatalf("n=%d: out[%d] = %v, want %v", n, i, out[i], in[i])
			}
		}
		out[0] = 99
		if in[0] == 99 {
			t.Fatal("OneSided must copy")
		}
	}
}

func TestFrequencies(t *testing.T) {
	f, err := Frequencies(8, 800)
	if err != nil {
		t.Fatalf("Frequencies: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, f, []float64{0, 100, 200, 300, 400}, 1e-12)

	if got := BinFrequency(6, 8, 800); got != -200 {
		t.Fatalf("BinFrequency(6) = %v, want -200", got)
	}
	if got := BinFrequency(4, 8, 800); got != 400 {
		t.Fatalf("BinFrequency(4) = %v, want 400", got)
	}

	if _, err := Frequencies(0, 800); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Frequencies(8, sr); !errors.Is(err, ErrInvalidSampleRate) {
			t.Fatalf("sampleRate %v: expected ErrInvalidSampleRate, got %v", sr, err)
		}
	}
}

func TestPeakOfSine(t *testing.T) {
	const n = 64
	x := testutil.DeterministicSine(5, 1, n)

	X, err := fourier.FFT(x)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	k, mag := Peak(X)
	if k != 5 {
		t.Fatalf("peak bin = %d, want 5", k)
	}
	if math.Abs(mag-n/2) > 1e-9 {
		t.Fatalf("peak magnitude = %v, want %v", mag, n/2)
	}

	// sin -> -i/2 * N in the negative-exponent convention; ours is conjugated.
	phase := Phase(X)
	if math.Abs(phase[5]-math.Pi/2) > 1e-9 {
		t.Fatalf("phase at peak = %v, want pi/2", phase[5])
	}
}
