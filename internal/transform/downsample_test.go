package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/antisocialites/Deep-Learning/internal/errs"
)

func rampMatrix(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	return mat.NewDense(rows, cols, data)
}

func TestDownsample_FactorOneIsIdentity(t *testing.T) {
	m := rampMatrix(2, 6)

	out, err := Downsample(m, DownsampleOptions{Factor: 1})
	require.NoError(t, err)
	assert.Same(t, m, out)
}

func TestDownsample_Subsample(t *testing.T) {
	m := rampMatrix(2, 10)

	out, err := Downsample(m, DownsampleOptions{Factor: 3})
	require.NoError(t, err)

	rows, cols := out.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)

	// every 3rd sample along the time axis
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, m.At(i, j*3), out.At(i, j))
		}
	}
}

func TestDownsample_FactorFromRates(t *testing.T) {
	m := rampMatrix(1, 12)

	tests := []struct {
		name       string
		origRate   float64
		targetRate float64
		wantCols   int
	}{
		{"exact ratio", 1000, 250, 3},          // factor 4
		{"ratio rounds to nearest", 1000, 300, 4}, // 3.33 -> factor 3
		{"hcp rates", 2034.51, 508.63, 3},      // 4.0002 -> factor 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Downsample(m, DownsampleOptions{
				OrigRate:   tt.origRate,
				TargetRate: tt.targetRate,
			})
			require.NoError(t, err)

			_, cols := out.Dims()
			assert.Equal(t, tt.wantCols, cols)
		})
	}
}

func TestDownsample_TargetAboveOrigIsIdentity(t *testing.T) {
	m := rampMatrix(1, 12)

	out, err := Downsample(m, DownsampleOptions{OrigRate: 250, TargetRate: 1000})
	require.NoError(t, err)
	assert.Same(t, m, out)
}

func TestDownsample_Decimate(t *testing.T) {
	cols := 120
	data := make([]float64, cols)
	for i := range data {
		data[i] = 1.5
	}
	m := mat.NewDense(1, cols, data)

	out, err := Downsample(m, DownsampleOptions{Factor: 4, Method: MethodDecimate})
	require.NoError(t, err)

	_, outCols := out.Dims()
	assert.Equal(t, 30, outCols)
	for j := 0; j < outCols; j++ {
		assert.InDelta(t, 1.5, out.At(0, j), 1e-9)
	}
}

func TestDownsample_Validation(t *testing.T) {
	m := rampMatrix(1, 8)

	tests := []struct {
		name string
		opts DownsampleOptions
		want error
	}{
		{
			name: "no factor and no target rate",
			opts: DownsampleOptions{},
			want: errs.ErrMissingParameter,
		},
		{
			name: "target rate without orig rate",
			opts: DownsampleOptions{TargetRate: 250},
			want: errs.ErrMissingParameter,
		},
		{
			name: "unknown method",
			opts: DownsampleOptions{Factor: 2, Method: "wavelet"},
			want: errs.ErrUnknownMethod,
		},
		{
			name: "unknown method rejected even when factor is a no-op",
			opts: DownsampleOptions{Factor: 1, Method: "wavelet"},
			want: errs.ErrUnknownMethod,
		},
		{
			name: "unknown method rejected before parameter check",
			opts: DownsampleOptions{Method: "wavelet"},
			want: errs.ErrUnknownMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Downsample(m, tt.opts)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestDownsample_DoesNotMutateInput(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	m := mat.NewDense(1, 8, append([]float64(nil), data...))

	_, err := Downsample(m, DownsampleOptions{Factor: 2})
	require.NoError(t, err)
	_, err = Downsample(m, DownsampleOptions{Factor: 2, Method: MethodDecimate})
	require.NoError(t, err)

	for i, want := range data {
		assert.Equal(t, want, m.At(0, i))
	}
}
