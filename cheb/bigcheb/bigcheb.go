// Package bigcheb cross-checks the float64 Chebyshev basis in cheb against a
// higher-precision evaluation, and exposes the rank/accuracy bound the
// driver uses to reject unusable ranks before doing any O(N) work.
//
// Grounded on the teacher's high-precision approximation path
// (utils/bignum, exercised from examples/singleparty/ckks_sigmoid_chebyshev)
// which reaches for github.com/ALTree/bigfloat whenever float64 precision
// isn't enough to trust a Chebyshev construction; this package does the same
// for the node set a tree is built from.
package bigcheb

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// piDigits is π to 100 decimal places (about 330 bits).
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// StandardNodes returns the n standard Chebyshev nodes of the first kind,
// computed at the requested bit precision instead of float64, mirroring
// cheb.StandardNodes one node at a time. π is parsed from piDigits, so
// precisions beyond about 330 bits gain no further accuracy.
func StandardNodes(n int, prec uint) []*big.Float {
	if n < 1 {
		panic("bigcheb: StandardNodes requires n >= 1")
	}
	pi, _ := new(big.Float).SetPrec(prec).SetString(piDigits)

	out := make([]*big.Float, n)
	for k := 0; k < n; k++ {
		// angle = (k+0.5)*pi/n
		half := new(big.Float).SetPrec(prec).SetFloat64(float64(k) + 0.5)
		angle := new(big.Float).SetPrec(prec).Mul(half, pi)
		angle.Quo(angle, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		out[k] = bigfloat.Cos(angle)
	}
	return out
}

// ToFloat64 lowers a slice of high-precision nodes back to float64, for
// comparison against cheb.StandardNodes.
func ToFloat64(nodes []*big.Float) []float64 {
	out := make([]float64, len(nodes))
	for i, v := range nodes {
		f, _ := v.Float64()
		out[i] = f
	}
	return out
}

// ErrorBound returns the specification's Testable Property 6 accuracy bound
// for a given rank: 10*(1/2)^rank. BuildTree's Options.Verify uses this to
// reject ranks that cannot promise any useful accuracy (bound > 1.0) before
// paying for tree construction.
func ErrorBound(rank int) float64 {
	return 10.0 * math.Pow(0.5, float64(rank))
}
