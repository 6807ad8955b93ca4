// Command dftinfo prints the Fourier coefficients of a real sequence.
//
// Usage:
//
//	dftinfo [flags] [value ...]
//
// Values may be separated by spaces or commas. With -random N a
// deterministic uniform sequence of length N is used instead.
//
// Examples:
//
//	dftinfo 0.2 0.2 0.3 0.4 0.5 0.6 0.7 0.8
//	dftinfo -algo dft 1,0,-1
//	dftinfo -random 1024 -compare -roundtrip
//	dftinfo -rate 48000 -random 16
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dft/dsp/fourier"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

type options struct {
	algo      fourier.Algorithm
	prec      int
	rate      float64
	random    int
	seed      int64
	compare   bool
	roundTrip bool
	quiet     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dftinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	algo := fs.String("algo", "auto", "transform algorithm: auto, dft or fft")
	prec := fs.Int("prec", 4, "decimal places in the coefficient table")
	rate := fs.Float64("rate", 0, "sample rate in Hz; adds a frequency column when > 0")
	random := fs.Int("random", 0, "transform a random sequence of this length instead of the arguments")
	seed := fs.Int64("seed", 1, "seed for -random")
	compare := fs.Bool("compare", false, "report the maximum deviation from the algo-fft reference")
	roundTrip := fs.Bool("roundtrip", false, "report the maximum inverse-transform reconstruction error")
	quiet := fs.Bool("quiet", false, "suppress the coefficient table")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dftinfo [flags] [value ...]\n\n")
		fmt.Fprintf(stderr, "Prints the Fourier coefficients of a real sequence.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dftinfo 0.2 0.2 0.3 0.4 0.5 0.6 0.7 0.8\n")
		fmt.Fprintf(stderr, "  dftinfo -algo dft 1,0,-1\n")
		fmt.Fprintf(stderr, "  dftinfo -random 1024 -compare -roundtrip -quiet\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := fourier.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}
	opts := options{
		algo:      a,
		prec:      *prec,
		rate:      *rate,
		random:    *random,
		seed:      *seed,
		compare:   *compare,
		roundTrip: *roundTrip,
		quiet:     *quiet,
	}

	x, err := input(fs.Args(), opts)
	if err != nil {
		return err
	}

	return report(stdout, x, opts)
}

func input(args []string, opts options) ([]float64, error) {
	if opts.random > 0 {
		rng := rand.New(rand.NewSource(opts.seed))
		x := make([]float64, opts.random)
		for i := range x {
			x[i] = rng.Float64()
		}
		return x, nil
	}

	var x []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			x = append(x, v)
		}
	}
	if len(x) == 0 {
		return nil, errors.New("no input values (pass values or use -random)")
	}
	return x, nil
}

func report(w io.Writer, x []float64, opts options) error {
	withAlgo := fourier.WithAlgorithm(opts.algo)

	X, err := fourier.Transform(x, withAlgo)
	if err != nil {
		return err
	}

	if !opts.quiet {
		if err := printTable(w, X, opts); err != nil {
			return err
		}
	}

	if opts.roundTrip {
		back, err := fourier.InverseTransform(X, withAlgo)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "round-trip max error: %.3e\n", maxAbsDiff(back, x)); err != nil {
			return err
		}
	}

	if opts.compare {
		ref, err := fourier.Reference(x)
		if err != nil {
			return err
		}
		maxDev := 0.0
		for i := range X {
			if d := cmplx.Abs(X[i] - ref[i]); d > maxDev {
				maxDev = d
			}
		}
		if _, err := fmt.Fprintf(w, "max deviation from algo-fft: %.3e\n", maxDev); err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, X []complex128, opts options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Bin\tRe\tIm\t|X|\tPhase [rad]\n"
	rule := "---\t--\t--\t---\t-----------\n"
	if opts.rate > 0 {
		header = "Bin\tFreq [Hz]\tRe\tIm\t|X|\tPhase [rad]\n"
		rule = "---\t---------\t--\t--\t---\t-----------\n"
	}
	if _, err := fmt.Fprint(tw, header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	mag := spectrum.Magnitude(X)
	phase := spectrum.Phase(X)
	p := opts.prec
	for k, c := range X {
		var row string
		if opts.rate > 0 {
			row = fmt.Sprintf("%d\t%.2f\t%.*f\t%.*f\t%.*f\t%.*f\n", k,
				spectrum.BinFrequency(k, len(X), opts.rate),
				p, real(c), p, imag(c), p, mag[k], p, phase[k])
		} else {
			row = fmt.Sprintf("%d\t%.*f\t%.*f\t%.*f\t%.*f\n", k,
				p, real(c), p, imag(c), p, mag[k], p, phase[k])
		}
		if _, err := fmt.Fprint(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func maxAbsDiff(a, b []float64) float64 {
	maxDiff := 0.0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
