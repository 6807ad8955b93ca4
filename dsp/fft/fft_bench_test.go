package fft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for _, n := range []int{16, 256, 1024, 8192} {
		x := testutil.DeterministicComplexNoise(int64(n), 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Forward(x)
			}
		})
	}
}

func BenchmarkInverseReal(b *testing.B) {
	x := testutil.DeterministicComplexNoise(1, 1, 1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = InverseReal(x)
	}
}
