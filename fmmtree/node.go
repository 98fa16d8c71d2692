// Package fmmtree implements the 1-D adaptive binary tree over a point set:
// its construction (assign_Children in the source) and its same-level
// neighbor/interaction topology (build_Tree/assign_Siblings/assign_Cousin in
// the source). Grounded on original_source/H2_1D_Tree.py,
// original_source/H2_1D_Node.py and original_source/H2_1D_Tree_Functions.py.
//
// Per the specification's design notes, nodes live in a single arena
// (Tree.nodes) and reference each other through integer indices (NodeRef)
// rather than pointers, so parent/neighbor/interaction back-references never
// form ownership cycles and need no reference counting.
package fmmtree

import "github.com/bbfmm/fmm1d/internal/matrix"

// NodeRef is an index into a Tree's node arena. NoNode is the sentinel for
// "absent".
type NodeRef int

// NoNode is the sentinel NodeRef meaning "no such node".
const NoNode NodeRef = -1

// Node is one node of the tree. Leaf-only (RLeaf) and internal-only
// (Children) fields simply sit unused on the other variant rather than in a
// tagged union, favoring the simplicity of a flat struct over the storage
// savings of a real variant for trees of the size this module targets.
type Node struct {
	Level  int
	Center float64
	Radius float64

	// Index holds the global indices of the particles this node contains,
	// in the order they were encountered while partitioning the parent.
	Index  []int
	NLocal int

	IsLeaf  bool
	IsEmpty bool
	IsRoot  bool

	// ScaledCNodes are this node's Chebyshev nodes in the global coordinate:
	// Center + Radius*c_k.
	ScaledCNodes []float64

	// Location holds the global-coordinate locations of every particle in
	// Index, in the same order. Populated for every non-empty node (not
	// just leaves): an internal node whose same-level neighbor terminated
	// as a leaf one level up needs its own full descendant location set to
	// receive that neighbor's near-field contribution directly (see
	// fmm.Evaluate).
	Location []float64

	// RLeaf is the N_local×rank particle-to-Chebyshev interpolation matrix,
	// populated for leaves only.
	RLeaf matrix.Dense[float64]

	// Charge, NodeCharge, NodePotential and Potential are all m-dependent
	// and are zeroed and populated fresh on every Evaluate call: the tree's
	// topology must not bake in a particular charge block (spec.md §6).
	Charge         matrix.Dense[float64] // this node's particle charges (leaves and near-field sources), shape NLocal×m
	ChargeComputed bool
	NodeCharge     matrix.Dense[float64] // multipole coefficients, shape rank×m
	NodePotential  matrix.Dense[float64] // local coefficients, shape rank×m
	Potential      matrix.Dense[float64] // accumulated particle potentials, shape NLocal×m

	Parent      NodeRef
	Children    [2]NodeRef
	Neighbors   [2]NodeRef
	Interaction [3]NodeRef

	NNeighbor    int
	NInteraction int
}

func newNode(level int) Node {
	return Node{
		Level:       level,
		IsLeaf:      true,
		IsEmpty:     true,
		Parent:      NoNode,
		Children:    [2]NodeRef{NoNode, NoNode},
		Neighbors:   [2]NodeRef{NoNode, NoNode},
		Interaction: [3]NodeRef{NoNode, NoNode, NoNode},
	}
}

// Tree is the 1-D FMM tree: an arena of nodes, a root reference, and the
// tree-wide Chebyshev constants shared by every node (spec.md §3).
type Tree struct {
	Rank int
	N    int

	// Locations are the borrowed point locations supplied to Build; the
	// tree never mutates them (each node copies its own particles'
	// locations into Node.Location).
	Locations []float64

	CNode []float64             // standard Chebyshev nodes, length Rank
	TRef  matrix.Dense[float64] // reference evaluation matrix, Rank x Rank
	R0    matrix.Dense[float64] // M2M/L2L transfer operator, left child
	R1    matrix.Dense[float64] // M2M/L2L transfer operator, right child

	nodes    []Node
	root     NodeRef
	maxLevel int
}

// Root returns the root node's reference.
func (t *Tree) Root() NodeRef { return t.root }

// MaxLevel returns the deepest level reached by any leaf.
func (t *Tree) MaxLevel() int { return t.maxLevel }

// Node returns a pointer into the arena for ref. Callers must not retain the
// pointer past a call that grows the arena (only Build does that).
func (t *Tree) Node(ref NodeRef) *Node {
	return &t.nodes[ref]
}

// alloc appends a new node at level and returns its reference.
func (t *Tree) alloc(level int) NodeRef {
	t.nodes = append(t.nodes, newNode(level))
	return NodeRef(len(t.nodes) - 1)
}

// Walk visits every node in the arena in allocation order (root first,
// parents before children), calling fn on each. Used by phases that need a
// simple "every node" traversal, like the potential/charge zeroing pre-pass.
func (t *Tree) Walk(fn func(ref NodeRef, n *Node)) {
	for i := range t.nodes {
		fn(NodeRef(i), &t.nodes[i])
	}
}

// Leaves returns the references of every non-empty leaf, in allocation
// order. Used by tests checking index conservation (Testable Property 1).
func (t *Tree) Leaves() []NodeRef {
	var out []NodeRef
	for i := range t.nodes {
		if t.nodes[i].IsLeaf && !t.nodes[i].IsEmpty {
			out = append(out, NodeRef(i))
		}
	}
	return out
}
