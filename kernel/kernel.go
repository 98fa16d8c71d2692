// Package kernel implements the user-supplied kernel callable contract of
// the FMM evaluator plus the conformance kernel catalog, grounded on
// original_source/CustomKernels.py.
package kernel

import (
	"math"

	"github.com/bbfmm/fmm1d/internal/matrix"
)

// Func evaluates K[i][j] = k(x[i], y[j]) for an M×N kernel matrix. It must be
// pure and deterministic: called repeatedly with the same x, y it must
// return the same values, since the evaluator calls it once per M2L node
// pair and once per row batch of every near-field block, including each
// leaf's self-block.
type Func func(x, y []float64) matrix.Dense[float64]

// Laplacian1D is k(r) = 1/r with 0 substituted at r <= 1e-10, the first
// conformance kernel of the specification. Grounded on CustomKernels.py's
// laplacian1D.
func Laplacian1D(x, y []float64) matrix.Dense[float64] {
	K := matrix.New[float64](len(x), len(y))
	for i, xi := range x {
		for j, yj := range y {
			r := xi - yj
			if r < 0 {
				r = -r
			}
			if r > 1e-10 {
				K[i][j] = 1.0 / r
			}
		}
	}
	return K
}

// Gaussian1D returns k(r) = exp(-(r/a)²), the second conformance kernel of
// the specification. Grounded on CustomKernels.py's gaussian1D.
func Gaussian1D(a float64) Func {
	return func(x, y []float64) matrix.Dense[float64] {
		K := matrix.New[float64](len(x), len(y))
		for i, xi := range x {
			for j, yj := range y {
				r := (xi - yj) / a
				K[i][j] = math.Exp(-r * r)
			}
		}
		return K
	}
}

// DefaultGaussian is Gaussian1D with a = 1, the default named in the
// specification.
var DefaultGaussian = Gaussian1D(1.0)
