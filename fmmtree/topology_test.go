package fmmtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildLinked(t *testing.T, points []float64, rank int) *Tree {
	t.Helper()
	tree, err := Build(points, rank)
	require.NoError(t, err)
	LinkTopology(tree)
	return tree
}

func TestTopologySymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := make([]float64, 300)
	for i := range points {
		points[i] = rng.Float64()
	}
	tree := buildLinked(t, points, 3)

	tree.Walk(func(ref NodeRef, n *Node) {
		if n.IsEmpty {
			return
		}
		for k := 0; k < 2; k++ {
			nb := n.Neighbors[k]
			if nb == NoNode {
				continue
			}
			nbNode := tree.Node(nb)
			require.Equal(t, ref, nbNode.Neighbors[1-k],
				"node %d neighbor[%d]=%d does not point back", ref, k, nb)
		}
	})
}

func TestInteractionListsExcludeTouchingNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	points := make([]float64, 400)
	for i := range points {
		points[i] = rng.Float64()
	}
	tree := buildLinked(t, points, 4)

	tree.Walk(func(ref NodeRef, n *Node) {
		for i := 0; i < n.NInteraction; i++ {
			ia := n.Interaction[i]
			require.NotEqual(t, n.Neighbors[0], ia)
			require.NotEqual(t, n.Neighbors[1], ia)
			require.False(t, tree.Node(ia).IsEmpty)
		}
	})
}

func TestInteractionListAtMostThree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]float64, 1000)
	for i := range points {
		points[i] = rng.Float64()
	}
	tree := buildLinked(t, points, 5)

	tree.Walk(func(ref NodeRef, n *Node) {
		require.LessOrEqual(t, n.NInteraction, 3)
		require.LessOrEqual(t, n.NNeighbor, 2)
	})
}

// TestMixedDepthTopology exercises the specification's resolved Open
// Question: a subtree whose neighbor at the parent level is itself a leaf
// must not populate an interaction entry from that neighbor — near-field
// contributions flow through the neighbor list instead. We force a
// mixed-depth tree by clustering most points on the left and leaving just
// enough on the right to form a single leaf at a shallower level.
func TestMixedDepthTopology(t *testing.T) {
	rank := 2
	var points []float64
	for i := 0; i < 200; i++ {
		points = append(points, float64(i)/200.0*0.4) // dense left half, deep subtree
	}
	for i := 0; i < 3; i++ {
		points = append(points, 0.9+float64(i)*0.01) // sparse right half, shallow leaf
	}

	tree := buildLinked(t, points, rank)

	root := tree.Node(tree.Root())
	right := tree.Node(root.Children[1])
	require.True(t, right.IsLeaf)
	require.False(t, right.IsEmpty)

	// The right subtree is a single leaf at level 1 with no interaction-list
	// entries. The left subtree is internal and its same-level neighbor is
	// that leaf, so assignCousin is never invoked for it: the left subtree's
	// right child gets no neighbor across that boundary and no interaction
	// entries sourced from the leaf.
	require.Equal(t, 0, right.NInteraction)
	left := tree.Node(root.Children[0])
	require.False(t, left.IsLeaf)
	leftRight := tree.Node(left.Children[1])
	require.Equal(t, NoNode, leftRight.Neighbors[1])
	require.Equal(t, 0, leftRight.NInteraction)
}
