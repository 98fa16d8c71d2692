// Package cpufeatures selects a near-field evaluation batch width from the
// host's vector capability. It is not a SIMD kernel: this package only tunes
// how many rows of a near-field kernel block the evaluator materializes per
// kernel call.
//
// The teacher's go.mod carries github.com/klauspost/cpuid/v2 only as an
// indirect dependency; this package gives it a direct use as a single
// feature check with no assembly.
package cpufeatures

import "github.com/klauspost/cpuid/v2"

// BatchWidth is the number of near-field rows evaluate processes per inner
// pass. It is a tuning constant, not a correctness parameter: any positive
// value yields the same numerical result.
const (
	narrowBatch = 4
	wideBatch   = 8
)

// HasAVX2 reports whether the host CPU advertises AVX2.
func HasAVX2() bool {
	return cpuid.CPU.Supports(cpuid.AVX2)
}

// BatchWidth returns wideBatch on hosts with AVX2, narrowBatch otherwise.
func BatchWidth() int {
	if HasAVX2() {
		return wideBatch
	}
	return narrowBatch
}
