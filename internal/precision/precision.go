// Package precision reports how closely an approximate potential matches a
// reference, realizing Testable Property 6 (bounded relative error) as a
// reusable stat, not just a pass/fail assertion.
//
// Grounded on the teacher's ckks.GetPrecisionStats(...).String() call-site
// idiom (examples/singleparty/ckks_sigmoid_chebyshev/main.go), which reports
// a precision summary after comparing an approximate evaluation against a
// reference one; this package does the analogous comparison for a dense
// potential matrix using github.com/montanaflynn/stats instead of the
// teacher's internal ring-precision machinery.
package precision

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/bbfmm/fmm1d/internal/matrix"
)

// Stats summarizes the element-wise error between an approximate and a
// reference potential matrix.
type Stats struct {
	RelativeL2 float64
	MeanAbs    float64
	StdDevAbs  float64
	MaxAbs     float64
}

// Compare computes Stats for got against want. Both must have identical
// shape; Compare panics otherwise, since a shape mismatch here is a caller
// bug, not a runtime condition callers should branch on.
func Compare(got, want matrix.Dense[float64]) Stats {
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		panic("precision: Compare requires identical shapes")
	}

	var errs stats.Float64Data
	var sqErr, sqWant float64
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			d := got[i][j] - want[i][j]
			errs = append(errs, math.Abs(d))
			sqErr += d * d
			sqWant += want[i][j] * want[i][j]
		}
	}

	mean, _ := errs.Mean()
	sd, _ := errs.StandardDeviation()
	mx, _ := errs.Max()

	rel := 0.0
	if sqWant > 0 {
		rel = math.Sqrt(sqErr / sqWant)
	}

	return Stats{
		RelativeL2: rel,
		MeanAbs:    mean,
		StdDevAbs:  sd,
		MaxAbs:     mx,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("relL2=%.3e mean=%.3e std=%.3e max=%.3e",
		s.RelativeL2, s.MeanAbs, s.StdDevAbs, s.MaxAbs)
}
