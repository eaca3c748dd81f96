package transform

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Epsilon guards the divisions against constant rows.
const Epsilon = 1e-8

// Axis selects the direction statistics are computed over.
type Axis int

const (
	// AlongTime computes statistics per node, over the time axis (rows).
	AlongTime Axis = iota
	// AlongNodes computes statistics per timepoint, over the node axis
	// (columns).
	AlongNodes
)

// MinMaxScale rescales each vector along the given axis to [0, 1] using
// (x - min) / (max - min + eps). The input matrix is not modified.
func MinMaxScale(m *mat.Dense, axis Axis) *mat.Dense {
	return apply(m, axis, func(v []float64) {
		mn := floats.Min(v)
		mx := floats.Max(v)
		scale := 1 / (mx - mn + Epsilon)
		for i := range v {
			v[i] = (v[i] - mn) * scale
		}
	})
}

// ZScore standardizes each vector along the given axis to zero mean and
// unit variance using (x - mean) / (std + eps), with the population
// standard deviation. The input matrix is not modified.
func ZScore(m *mat.Dense, axis Axis) *mat.Dense {
	return apply(m, axis, func(v []float64) {
		mean := stat.Mean(v, nil)
		std := stat.PopStdDev(v, nil)
		scale := 1 / (std + Epsilon)
		for i := range v {
			v[i] = (v[i] - mean) * scale
		}
	})
}

// apply copies m and transforms each row (AlongTime) or column
// (AlongNodes) of the copy in place with fn.
func apply(m *mat.Dense, axis Axis, fn func([]float64)) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.DenseCopyOf(m)

	switch axis {
	case AlongNodes:
		col := make([]float64, rows)
		for j := 0; j < cols; j++ {
			mat.Col(col, j, out)
			fn(col)
			out.SetCol(j, col)
		}
	default:
		for i := 0; i < rows; i++ {
			fn(out.RawRowView(i))
		}
	}

	return out
}
