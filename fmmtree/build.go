package fmmtree

import (
	"math"

	"github.com/bbfmm/fmm1d/cheb"
	"github.com/bbfmm/fmm1d/internal/ferrors"
	"github.com/bbfmm/fmm1d/internal/slicesx"
)

// dedupTolerance is the distance below which two particle locations are
// treated as coincident by the duplicate-point leaf rule (SPEC_FULL.md §4.3
// expansion, correcting the source's unbounded recursion on duplicate
// points per spec.md §9).
const dedupTolerance = 1e-14

// Build constructs the tree over points for the given rank: it computes the
// bounding interval, recursively partitions points into a binary tree
// (assign_Children in the source) until every node is a leaf (N_local <=
// 2*rank, or all contained points are coincident, or the node is empty), and
// builds each leaf's particle-to-Chebyshev interpolation matrix.
//
// It does not look at charges at all: topology depends only on point
// locations and rank, never on the charge block that will later be passed
// to Evaluate (spec.md §6).
func Build(points []float64, rank int) (*Tree, error) {
	if rank < 1 {
		return nil, ferrors.New(ferrors.InvalidRank, "fmmtree.Build")
	}
	if len(points) == 0 {
		return nil, ferrors.New(ferrors.EmptyInput, "fmmtree.Build")
	}
	for _, x := range points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ferrors.New(ferrors.NonFiniteInput, "fmmtree.Build")
		}
	}

	c, tRef := cheb.RefBasis(rank)
	R0, R1 := cheb.TransferOperators(rank)

	t := &Tree{
		Rank:      rank,
		N:         len(points),
		Locations: points,
		CNode:     c,
		TRef:      tRef,
		R0:        R0,
		R1:        R1,
	}

	center, radius := centerRadius(points)

	root := t.alloc(0)
	rootNode := t.Node(root)
	rootNode.Center = center
	rootNode.Radius = radius
	rootNode.Index = slicesx.Range(len(points))
	rootNode.NLocal = len(points)
	rootNode.IsRoot = true
	t.root = root

	t.assignChildren(root)

	return t, nil
}

// centerRadius computes the smallest interval containing points, matching
// get_Center_Radius.
func centerRadius(points []float64) (center, radius float64) {
	lo, hi := points[0], points[0]
	for _, x := range points[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return 0.5 * (hi + lo), 0.5 * (hi - lo)
}

// assignChildren realizes assign_Children: it marks an empty node a leaf and
// returns, otherwise allocates the node's Chebyshev-dependent buffers,
// decides leaf vs. internal, and on internal nodes partitions particles
// into two children by the strict `< center` test before recursing.
func (t *Tree) assignChildren(ref NodeRef) {
	n := t.Node(ref)

	if n.NLocal == 0 {
		n.IsLeaf = true
		n.IsEmpty = true
		return
	}

	n.IsEmpty = false
	n.ScaledCNodes = scaledChebNodes(n.Center, n.Radius, t.CNode)

	n.Location = make([]float64, n.NLocal)
	for k, idx := range n.Index {
		n.Location[k] = t.Locations[idx]
	}

	if n.NLocal <= 2*t.Rank || slicesx.AllEqual(n.Location, dedupTolerance) {
		n.IsLeaf = true
		standardized := make([]float64, n.NLocal)
		for k, loc := range n.Location {
			standardized[k] = (loc - n.Center) / n.Radius
		}
		n.RLeaf = cheb.LeafInterpolation(standardized, t.TRef, t.Rank)
		if n.Level > t.maxLevel {
			t.maxLevel = n.Level
		}
		return
	}

	n.IsLeaf = false

	leftIdx, rightIdx := slicesx.Partition(n.Index, func(i int) bool {
		return t.Locations[i] < n.Center
	})

	for k, idx := range [][]int{leftIdx, rightIdx} {
		child := t.alloc(n.Level + 1)
		// Re-fetch n: alloc may have reallocated the arena backing slice.
		n = t.Node(ref)
		cn := t.Node(child)
		cn.Parent = ref
		cn.Center = n.Center + (float64(k)-0.5)*n.Radius
		cn.Radius = n.Radius * 0.5
		cn.Index = idx
		cn.NLocal = len(idx)
		n.Children[k] = child
	}

	for k := 0; k < 2; k++ {
		t.assignChildren(t.Node(ref).Children[k])
	}
}

func scaledChebNodes(center, radius float64, c []float64) []float64 {
	out := make([]float64, len(c))
	for i, ci := range c {
		out[i] = center + radius*ci
	}
	return out
}
