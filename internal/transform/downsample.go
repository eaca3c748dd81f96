package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/antisocialites/Deep-Learning/internal/dsp"
	"github.com/antisocialites/Deep-Learning/internal/errs"
)

// Downsampling methods.
const (
	// MethodSubsample keeps every factor-th sample without filtering.
	// Fast, but aliases energy above the new Nyquist frequency.
	MethodSubsample = "subsample"
	// MethodDecimate applies an anti-aliasing low-pass filter before
	// subsampling.
	MethodDecimate = "decimate"
)

// DownsampleOptions selects how the temporal resolution is reduced.
// Either Factor or TargetRate must be set; TargetRate also needs
// OrigRate. An empty Method means MethodSubsample.
type DownsampleOptions struct {
	Factor     int
	OrigRate   float64
	TargetRate float64
	Method     string
}

// Downsample reduces the temporal resolution of m by an integer factor,
// given directly or derived as round(OrigRate/TargetRate). The method and
// factor arguments are validated before anything else; a valid factor of
// 1 or less then returns m unchanged. The input matrix is never modified.
func Downsample(m *mat.Dense, opts DownsampleOptions) (*mat.Dense, error) {
	switch opts.Method {
	case MethodSubsample, MethodDecimate, "":
	default:
		return nil, errs.ValidationWrap(errs.ErrUnknownMethod, "method",
			fmt.Sprintf("got %q, want %q or %q", opts.Method, MethodSubsample, MethodDecimate))
	}

	factor, err := opts.factor()
	if err != nil {
		return nil, err
	}
	if factor <= 1 {
		return m, nil
	}

	if opts.Method == MethodDecimate {
		return dsp.Decimate(m, factor), nil
	}
	return subsample(m, factor), nil
}

func (o DownsampleOptions) factor() (int, error) {
	if o.Factor != 0 {
		return o.Factor, nil
	}
	if o.TargetRate == 0 {
		return 0, errs.ValidationWrap(errs.ErrMissingParameter, "factor",
			"either a factor or a target sampling rate is required")
	}
	if o.OrigRate <= 0 {
		return 0, errs.ValidationWrap(errs.ErrMissingParameter, "orig_rate",
			"a positive original sampling rate is required with target_rate")
	}
	return int(math.Round(o.OrigRate / o.TargetRate)), nil
}

// subsample keeps every factor-th column starting at column 0.
func subsample(m *mat.Dense, factor int) *mat.Dense {
	rows, cols := m.Dims()
	outCols := (cols + factor - 1) / factor
	out := mat.NewDense(rows, outCols, nil)
	for j := 0; j < outCols; j++ {
		for i := 0; i < rows; i++ {
			out.Set(i, j, m.At(i, j*factor))
		}
	}
	return out
}
