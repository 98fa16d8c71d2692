// Package cheb implements the Chebyshev basis and the M2M/L2L transfer
// operators used to compress far-field interactions on the FMM tree.
//
// It generalizes the recurrence in the teacher's
// ckks/chebyshev_interpolation.go (there used for complex-valued Chebyshev
// regression of a scalar function) to the real-valued interpolation
// operators the 1-D H² tree needs: standard nodes on [-1,1], the evaluation
// matrix of Chebyshev polynomials at arbitrary points, and the parent→child
// transfer matrices R[0], R[1].
package cheb

import (
	"math"

	"github.com/bbfmm/fmm1d/internal/matrix"
)

// StandardNodes returns the n standard Chebyshev nodes of the first kind on
// [-1, 1]: c_k = cos((k+0.5)·π/n), k = 0..n-1.
func StandardNodes(n int) []float64 {
	if n < 1 {
		panic("cheb: StandardNodes requires n >= 1")
	}
	c := make([]float64, n)
	for k := 0; k < n; k++ {
		c[k] = math.Cos((float64(k) + 0.5) * math.Pi / float64(n))
	}
	return c
}

// Polynomials evaluates the first n Chebyshev polynomials T_0..T_{n-1} at
// every point in x, returning the len(x)×n matrix T with
//
//	T[i][0]   = 1
//	T[i][1]   = x[i]                      (if n > 1)
//	T[i][k]   = 2·x[i]·T[i][k-1] - T[i][k-2]
func Polynomials(x []float64, n int) matrix.Dense[float64] {
	if n < 1 {
		panic("cheb: Polynomials requires n >= 1")
	}
	T := matrix.New[float64](len(x), n)
	for i, xi := range x {
		T[i][0] = 1.0
		if n > 1 {
			T[i][1] = xi
			for k := 2; k < n; k++ {
				T[i][k] = 2.0*xi*T[i][k-1] - T[i][k-2]
			}
		}
	}
	return T
}
