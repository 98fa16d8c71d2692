package fmm

import "github.com/bbfmm/fmm1d/internal/ferrors"

// Error, Kind and the failure-kind constants are re-exported from
// internal/ferrors so callers of this package never need to import it
// directly, while fmmtree (which can fail independently of fmm) shares the
// exact same taxonomy.
type (
	Error = ferrors.Error
	Kind  = ferrors.Kind
)

const (
	InvalidShape      = ferrors.InvalidShape
	InvalidRank       = ferrors.InvalidRank
	EmptyInput        = ferrors.EmptyInput
	NonFiniteInput    = ferrors.NonFiniteInput
	AllocationFailure = ferrors.AllocationFailure
	KernelError       = ferrors.KernelError
)
