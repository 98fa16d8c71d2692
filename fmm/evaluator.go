// Package fmm implements the upward/downward evaluator and the public
// driver entry points, grounded on original_source/kernel_Base.py and
// original_source/FMM_Main.py.
package fmm

import (
	"github.com/bbfmm/fmm1d/fmmtree"
	"github.com/bbfmm/fmm1d/internal/cpufeatures"
	"github.com/bbfmm/fmm1d/internal/matrix"
	"github.com/bbfmm/fmm1d/kernel"
)

// zeroTree realizes set_Tree_Potential_Zero/set_Node_Charge_Zero: every
// non-empty node gets fresh, zeroed m-dependent buffers sized for this call's
// m, so a tree's topology never bakes in a particular charge block's width.
func zeroTree(t *fmmtree.Tree, m int) {
	t.Walk(func(_ fmmtree.NodeRef, n *fmmtree.Node) {
		if n.IsEmpty {
			return
		}
		n.Potential = matrix.New[float64](n.NLocal, m)
		n.NodePotential = matrix.New[float64](t.Rank, m)
		n.NodeCharge = matrix.New[float64](t.Rank, m)
		n.Charge = matrix.New[float64](n.NLocal, m)
		n.ChargeComputed = false
	})
}

// BuildCharges runs Phase 1 (the upward M2M pass): it copies each leaf's
// particle charges from q and aggregates them into node-level multipole
// coefficients, realizing update_Charge/get_Charge.
func BuildCharges(t *fmmtree.Tree, q matrix.Dense[float64]) {
	buildCharges(t, t.Root(), q)
}

func buildCharges(t *fmmtree.Tree, ref fmmtree.NodeRef, q matrix.Dense[float64]) {
	n := t.Node(ref)
	if n.IsEmpty {
		return
	}

	if n.IsLeaf {
		getCharge(n, q)
		n.NodeCharge.AddInPlace(matrix.MulT(n.RLeaf, n.Charge))
		return
	}

	children := n.Children
	for k := 0; k < 2; k++ {
		buildCharges(t, children[k], q)
		child := t.Node(children[k])
		if child.IsEmpty {
			continue
		}
		R := t.R0
		if k == 1 {
			R = t.R1
		}
		n.NodeCharge.AddInPlace(matrix.MulT(R, child.NodeCharge))
	}
}

func getCharge(n *fmmtree.Node, q matrix.Dense[float64]) {
	if n.ChargeComputed {
		return
	}
	n.ChargeComputed = true
	copyRows(n.Charge, q, n.Index)
}

func copyRows(dst, src matrix.Dense[float64], idx []int) {
	for i, gi := range idx {
		copy(dst[i], src[gi])
	}
}

// evaluate runs Phases 2 and 3 (M2L + L2L + near-field finalization),
// realizing calculate_Potential_Recursive/calculate_NodePotential_M2L/
// transfer_NodePotential_L2L/kernel_Cheb_1D, and scatters every node's
// contribution into the global potential p.
func evaluate(k kernel.Func, t *fmmtree.Tree, ref fmmtree.NodeRef, q matrix.Dense[float64], p matrix.Dense[float64]) {
	n := t.Node(ref)
	if n.IsEmpty {
		return
	}

	if n.IsLeaf {
		if !n.IsRoot {
			accumulateNeighborNearField(k, t, n, q)
		}
		n.Potential.AddInPlace(matrix.Mul(n.RLeaf, n.NodePotential))
		addNearField(k, n, n)
		scatter(p, n)
		return
	}

	computePotential := false
	if !n.IsRoot {
		for slot := 0; slot < 2; slot++ {
			nb := n.Neighbors[slot]
			if nb == fmmtree.NoNode {
				continue
			}
			nbNode := t.Node(nb)
			if !nbNode.IsLeaf {
				continue
			}
			getCharge(nbNode, q)
			addNearField(k, n, nbNode)
			computePotential = true
		}
	}

	m2l(k, t, n)
	l2l(t, n)

	if computePotential {
		scatter(p, n)
	}

	children := n.Children
	for slot := 0; slot < 2; slot++ {
		evaluate(k, t, children[slot], q, p)
	}
}

// accumulateNeighborNearField adds the direct kernel contribution from every
// occupied neighbor of a leaf into its potential buffer.
func accumulateNeighborNearField(k kernel.Func, t *fmmtree.Tree, n *fmmtree.Node, q matrix.Dense[float64]) {
	for slot := 0; slot < 2; slot++ {
		nb := n.Neighbors[slot]
		if nb == fmmtree.NoNode {
			continue
		}
		nbNode := t.Node(nb)
		getCharge(nbNode, q)
		addNearField(k, n, nbNode)
	}
}

// addNearField adds source's direct kernel contribution into holder's
// potential buffer, processing holder's rows in batches sized by
// cpufeatures.BatchWidth(). Batching only changes how many rows of the
// kernel block are materialized at once: the terms summed and their order
// within holder.Potential are identical regardless of batch width.
func addNearField(k kernel.Func, holder, source *fmmtree.Node) {
	width := cpufeatures.BatchWidth()
	n := len(holder.Location)
	for start := 0; start < n; start += width {
		end := start + width
		if end > n {
			end = n
		}
		K := k(holder.Location[start:end], source.Location)
		contribution := matrix.Mul(K, source.Charge)
		for i, row := range contribution {
			dst := holder.Potential[start+i]
			for c, v := range row {
				dst[c] += v
			}
		}
	}
}

// m2l accumulates every non-empty child's interaction-list contributions
// into that child's local coefficients.
func m2l(k kernel.Func, t *fmmtree.Tree, n *fmmtree.Node) {
	for slot := 0; slot < 2; slot++ {
		child := t.Node(n.Children[slot])
		if child.IsEmpty {
			continue
		}
		for i := 0; i < child.NInteraction; i++ {
			partner := t.Node(child.Interaction[i])
			K := k(child.ScaledCNodes, partner.ScaledCNodes)
			child.NodePotential.AddInPlace(matrix.Mul(K, partner.NodeCharge))
		}
	}
}

// l2l propagates a node's local coefficients down to its non-empty
// children via the M2M/L2L transfer operators' non-transposed form.
func l2l(t *fmmtree.Tree, n *fmmtree.Node) {
	for slot := 0; slot < 2; slot++ {
		child := t.Node(n.Children[slot])
		if child.IsEmpty {
			continue
		}
		R := t.R0
		if slot == 1 {
			R = t.R1
		}
		child.NodePotential.AddInPlace(matrix.Mul(R, n.NodePotential))
	}
}

// scatter adds a node's accumulated per-particle potential into the global
// output at that node's particle indices.
func scatter(p matrix.Dense[float64], n *fmmtree.Node) {
	for i, gi := range n.Index {
		row := p[gi]
		for c, v := range n.Potential[i] {
			row[c] += v
		}
	}
}
