package kernel

import "github.com/bbfmm/fmm1d/internal/matrix"

// AbsoluteDistance, AbsoluteDistanceIndexed and AbsoluteDistanceLoop all
// compute the same kernel K[i][j] = |x[i] - y[j]|, kept as a benchmark trio
// matching original_source/CustomKernels.py's exampleKernelA/B/C: a
// broadcast-style construction, an indexed construction, and an explicit
// double loop. The package's tests check that the three agree; the package
// has no benchmark of them. They are not meant to coexist in production
// code paths.

// AbsoluteDistance builds the kernel matrix a row at a time, broadcasting
// each x[i] across the full y row. Grounded on exampleKernelA.
func AbsoluteDistance(x, y []float64) matrix.Dense[float64] {
	K := matrix.New[float64](len(x), len(y))
	for i, xi := range x {
		row := K[i]
		for j, yj := range y {
			row[j] = abs(xi - yj)
		}
	}
	return K
}

// AbsoluteDistanceIndexed builds the same kernel via direct index
// assignment without a named row variable. Grounded on exampleKernelB.
func AbsoluteDistanceIndexed(x, y []float64) matrix.Dense[float64] {
	M, N := len(x), len(y)
	K := matrix.New[float64](M, N)
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			K[i][j] = abs(x[i] - y[j])
		}
	}
	return K
}

// AbsoluteDistanceLoop is the explicit-double-loop variant. Grounded on
// exampleKernelC; identical to AbsoluteDistanceIndexed in this generalized
// Go form but kept distinct to preserve the source's three-way split.
func AbsoluteDistanceLoop(x, y []float64) matrix.Dense[float64] {
	K := matrix.New[float64](len(x), len(y))
	for i := range x {
		for j := range y {
			d := x[i] - y[j]
			if d < 0 {
				d = -d
			}
			K[i][j] = d
		}
	}
	return K
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
