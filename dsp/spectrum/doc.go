// Package spectrum derives magnitudes, powers, phases and bin frequencies
// from coefficient sequences produced by package fourier, and evaluates
// single DFT bins in O(N) with the Goertzel recursion.
//
// Phases follow the positive-exponent forward kernel used throughout this
// module, so they are negated relative to gonum or FFTW output.
package spectrum
