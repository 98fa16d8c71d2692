package cheb

import "github.com/bbfmm/fmm1d/internal/matrix"

// RefBasis returns the standard Chebyshev nodes c and the reference
// evaluation matrix T_ref = Polynomials(c, rank), the rank×rank matrix used
// throughout the tree to interpolate between a node's standard Chebyshev
// nodes and arbitrary normalized locations within it.
func RefBasis(rank int) (c []float64, tRef matrix.Dense[float64]) {
	c = StandardNodes(rank)
	tRef = Polynomials(c, rank)
	return
}

// TransferOperators constructs the two rank×rank M2M/L2L transfer matrices
// R[0] (left child) and R[1] (right child), grounded on
// H2_1D_Tree_Functions.py's get_Transfer/get_Transfer_From_Parent_CNode_To_Children_CNode.
//
// Child Chebyshev nodes are built in the parent's standardized coordinate:
//
//	c_child[k]        = (c[k] - 1) / 2   (left,  k = 0..rank-1)
//	c_child[rank + k] = (c[k] + 1) / 2   (right, k = 0..rank-1)
//
// and the full (2·rank)×rank transfer matrix is
//
//	S = (2·P·T_refᵀ - 1) / rank
//
// where P is the Chebyshev-polynomial evaluation at the 2·rank child nodes.
// R[0], R[1] are S split row-wise into its top and bottom rank×rank halves.
func TransferOperators(rank int) (R0, R1 matrix.Dense[float64]) {
	c, tRef := RefBasis(rank)
	return transferOperators(rank, c, tRef)
}

func transferOperators(rank int, c []float64, tRef matrix.Dense[float64]) (R0, R1 matrix.Dense[float64]) {
	childC := make([]float64, 2*rank)
	for k := 0; k < rank; k++ {
		childC[k] = 0.5 * (c[k] - 1)
		childC[rank+k] = 0.5 * (c[k] + 1)
	}

	P := Polynomials(childC, rank)
	S := interpolationOperator(P, tRef, rank)

	R0 = S[0:rank]
	R1 = S[rank : 2*rank]
	return
}

// interpolationOperator computes (2·P·T_refᵀ - 1) / rank, the discrete
// Chebyshev interpolation operator mapping function values at the standard
// nodes underlying T_ref to function values at the points underlying P.
func interpolationOperator(P, tRef matrix.Dense[float64], rank int) matrix.Dense[float64] {
	S := matrix.Mul(P, matrix.Transpose(tRef))
	scale := 1.0 / float64(rank)
	for i := range S {
		for j := range S[i] {
			S[i][j] = (2.0*S[i][j] - 1) * scale
		}
	}
	return S
}

// LeafInterpolation builds the N_local×rank particle-to-Chebyshev
// interpolation matrix R_leaf for a leaf node, given the particle locations
// normalized to the node's standard coordinate ((x - center) / radius).
// Grounded on get_Transfer_From_Parent_To_Children.
func LeafInterpolation(standardized []float64, tRef matrix.Dense[float64], rank int) matrix.Dense[float64] {
	P := Polynomials(standardized, rank)
	return interpolationOperator(P, tRef, rank)
}
