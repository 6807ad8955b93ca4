package fourier

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dft/dsp/fft"
)

// Algorithm selects how a transform is evaluated.
type Algorithm int

const (
	// AlgorithmAuto uses radix-2 for power-of-two lengths, direct otherwise.
	AlgorithmAuto Algorithm = iota
	// AlgorithmDirect builds the full transform matrix.
	AlgorithmDirect
	// AlgorithmRadix2 uses the recursive Cooley-Tukey split.
	AlgorithmRadix2
)

var algorithmNames = map[Algorithm]string{
	AlgorithmAuto:   "auto",
	AlgorithmDirect: "dft",
	AlgorithmRadix2: "fft",
}

// String returns the short algorithm name accepted by [ParseAlgorithm].
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "auto", "dft"/"direct" and "fft"/"radix2" to an
// Algorithm. Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return AlgorithmAuto, nil
	case "dft", "direct":
		return AlgorithmDirect, nil
	case "fft", "radix2":
		return AlgorithmRadix2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

func (a Algorithm) resolve(n int) Algorithm {
	if a != AlgorithmAuto {
		return a
	}
	if fft.IsPowerOfTwo(n) {
		return AlgorithmRadix2
	}
	return AlgorithmDirect
}

func unknownAlgorithm(a Algorithm) error {
	return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}

type config struct {
	algorithm Algorithm
}

// Option configures [Transform] and [InverseTransform].
type Option func(*config)

func defaultConfig() config {
	return config{algorithm: AlgorithmAuto}
}

// WithAlgorithm forces the evaluation algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(cfg *config) {
		cfg.algorithm = a
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
