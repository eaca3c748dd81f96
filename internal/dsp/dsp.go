// Package dsp implements the signal-processing primitives used by the
// downsampling transform: FIR low-pass filter design and anti-aliased
// decimation of multi-channel recordings.
package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// tapsPerFactor sets the FIR filter length as a multiple of the
// decimation factor. 30 taps per unit factor keeps the transition band
// narrow enough for neural recordings without noticeable ringing.
const tapsPerFactor = 30

// LowpassFIR designs a windowed-sinc FIR low-pass filter with the given
// number of taps and cutoff expressed as a fraction of the Nyquist
// frequency (0 < cutoff <= 1). A Hamming window shapes the kernel and the
// taps are normalized to unit sum so DC passes unchanged.
func LowpassFIR(taps int, cutoff float64) []float64 {
	if taps < 1 {
		taps = 1
	}
	m := float64(taps - 1)
	h := make([]float64, taps)
	for n := range h {
		x := float64(n) - m/2
		h[n] = cutoff * sinc(cutoff*x) * hamming(float64(n), m)
	}
	floats.Scale(1/floats.Sum(h), h)
	return h
}

// Decimate low-pass filters each row of src and keeps every factor-th
// column starting at column 0. The filter cutoff is 1/factor of Nyquist
// and edge samples are replicated when the kernel overhangs the signal.
// src is not modified. A factor below 2 returns src unchanged.
func Decimate(src *mat.Dense, factor int) *mat.Dense {
	if factor <= 1 {
		return src
	}

	rows, cols := src.Dims()
	taps := tapsPerFactor*factor + 1
	h := LowpassFIR(taps, 1/float64(factor))
	half := taps / 2

	outCols := (cols + factor - 1) / factor
	out := mat.NewDense(rows, outCols, nil)

	for i := 0; i < rows; i++ {
		row := src.RawRowView(i)
		for j := 0; j < outCols; j++ {
			center := j * factor
			var acc float64
			for k := 0; k < taps; k++ {
				idx := center + k - half
				if idx < 0 {
					idx = 0
				} else if idx >= cols {
					idx = cols - 1
				}
				acc += h[k] * row[idx]
			}
			out.Set(i, j, acc)
		}
	}

	return out
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func hamming(n, m float64) float64 {
	if m == 0 {
		return 1
	}
	return 0.54 - 0.46*math.Cos(2*math.Pi*n/m)
}
