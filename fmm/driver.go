package fmm

import (
	"fmt"

	"github.com/bbfmm/fmm1d/cheb/bigcheb"
	"github.com/bbfmm/fmm1d/fmmtree"
	"github.com/bbfmm/fmm1d/internal/ferrors"
	"github.com/bbfmm/fmm1d/internal/fingerprint"
	"github.com/bbfmm/fmm1d/internal/matrix"
	"github.com/bbfmm/fmm1d/kernel"
)

// Tree is the opaque handle returned by BuildTree and consumed by Evaluate.
// It is an alias, not a wrapper, so callers needing lower-level access (for
// example tests) can still reach fmmtree directly.
type Tree = fmmtree.Tree

// Options configures BuildTree beyond (rank, points). It never influences
// tree structure based on charges — only Verify, a build-time sanity check.
type Options struct {
	// Verify, if true, rejects a rank whose theoretical accuracy bound
	// (Testable Property 6's 10*(1/2)^rank) exceeds 1.0, i.e. a rank too
	// small to promise any accuracy at all, before doing the O(N) work of
	// building the tree.
	Verify bool
}

// BuildTree is the specification's first driver entry point: it builds and
// links the tree topology for points at the given rank, never touching
// charges. Grounded on FMM_Main.py's H2_1D_Tree construction.
func BuildTree(rank int, points []float64, opts Options) (*Tree, error) {
	if opts.Verify {
		if bound := bigcheb.ErrorBound(rank); bound > 1.0 {
			return nil, ferrors.Wrap(ferrors.InvalidRank, "fmm.BuildTree",
				fmt.Errorf("rank %d has accuracy bound %.3g > 1.0, not a usable approximation", rank, bound))
		}
	}

	t, err := fmmtree.Build(points, rank)
	if err != nil {
		return nil, err
	}
	fmmtree.LinkTopology(t)
	return t, nil
}

// Evaluate is the specification's second driver entry point: given a kernel
// and a tree (already built, independent of any particular charge block)
// and an N×m charge matrix, it returns the N×m potential p = K·q to
// controlled accuracy. Grounded on kernel_Base.py's calculate_Potential.
func Evaluate(k kernel.Func, t *Tree, charges matrix.Dense[float64]) (matrix.Dense[float64], error) {
	if k == nil {
		panic("fmm: Evaluate requires a non-nil kernel")
	}
	if t == nil {
		panic("fmm: Evaluate requires a non-nil tree")
	}
	if charges.Rows() != t.N {
		return nil, ferrors.Wrap(ferrors.InvalidShape, "fmm.Evaluate",
			fmt.Errorf("charges has %d rows, tree has %d points", charges.Rows(), t.N))
	}

	m := charges.Cols()
	zeroTree(t, m)
	BuildCharges(t, charges)

	p := matrix.New[float64](t.N, m)
	potential, err := evaluateSafe(k, t, charges, p)
	if err != nil {
		return nil, err
	}
	return potential, nil
}

// evaluateSafe wraps the recursive evaluator so a panic inside a
// caller-supplied kernel surfaces as a KernelError rather than crashing the
// process, per spec.md §7 ("Kernel evaluation errors surface to the caller
// unchanged") — unchanged in the sense that we don't mask or retry them, we
// just convert an in-band panic into the same error-return contract every
// other failure in this package uses.
func evaluateSafe(k kernel.Func, t *Tree, q matrix.Dense[float64], p matrix.Dense[float64]) (out matrix.Dense[float64], err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = ferrors.Wrap(ferrors.KernelError, "fmm.Evaluate", fmt.Errorf("%v", r))
		}
	}()
	evaluate(k, t, t.Root(), q, p)
	return p, nil
}

// Fingerprint hashes a potential matrix, giving callers a cheap equality
// oracle for Testable Property 8 (determinism) without a full deep-equal.
func Fingerprint(p matrix.Dense[float64]) [32]byte {
	return fingerprint.Of(p)
}
