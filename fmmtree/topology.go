package fmmtree

// LinkTopology walks the tree top-down and populates every node's neighbor
// and interaction lists, realizing build_Tree/assign_Siblings/assign_Cousin
// from the source. It must run after Build and before any evaluation pass
// that reads a node's neighbor or interaction list.
func LinkTopology(t *Tree) {
	t.linkTopology(t.root)
}

func (t *Tree) linkTopology(ref NodeRef) {
	n := t.Node(ref)
	if n.IsEmpty || n.IsLeaf {
		return
	}

	t.assignSiblings(ref)

	for k := 0; k < 2; k++ {
		neighbor := t.Node(ref).Neighbors[k]
		if neighbor == NoNode {
			continue
		}
		nb := t.Node(neighbor)
		if nb.IsEmpty || nb.IsLeaf {
			continue
		}
		t.assignCousin(ref, k)
	}

	children := t.Node(ref).Children
	for k := 0; k < 2; k++ {
		t.linkTopology(children[k])
	}
}

// assignSiblings links a node's two children to each other as same-level
// neighbors: child 0 (left) and child 1 (right) always touch.
func (t *Tree) assignSiblings(ref NodeRef) {
	children := t.Node(ref).Children
	left, right := t.Node(children[0]), t.Node(children[1])

	t.addNeighbor(left, 1, children[1])
	t.addNeighbor(right, 0, children[0])
}

// assignCousin routes the children of neighbor[neighborNumber] into this
// node's children's neighbor or interaction lists, per spec.md §4.4. It is
// only called when that neighbor is known non-empty and non-leaf (both of
// its children exist), which is also the condition under which the source's
// interaction entries are well-defined (spec.md §9's Open Question).
func (t *Tree) assignCousin(ref NodeRef, neighborNumber int) {
	n := t.Node(ref)
	neighbor := n.Neighbors[neighborNumber]
	nb := t.Node(neighbor)
	nbChildren := nb.Children

	left := t.Node(n.Children[0])
	right := t.Node(n.Children[1])

	switch neighborNumber {
	case 0:
		// Left neighbor L: L.child[1] touches our child[0] (near cousin,
		// becomes its left neighbor); L.child[0] is well separated from
		// our child[0] (interaction) and from our child[1] (interaction).
		t.addInteraction(left, nbChildren[0])
		t.addNeighbor(left, 0, nbChildren[1])

		t.addInteraction(right, nbChildren[0])
		t.addInteraction(right, nbChildren[1])

	case 1:
		// Right neighbor R: symmetric to the left-neighbor case.
		t.addInteraction(left, nbChildren[0])
		t.addInteraction(left, nbChildren[1])

		t.addNeighbor(right, 1, nbChildren[0])
		t.addInteraction(right, nbChildren[1])
	}
}

// addInteraction appends ref to holder's interaction list, skipping empty
// candidates so every interaction list contains only non-empty same-level
// nodes (Testable Property 4).
func (t *Tree) addInteraction(holder *Node, ref NodeRef) {
	if t.Node(ref).IsEmpty {
		return
	}
	holder.Interaction[holder.NInteraction] = ref
	holder.NInteraction++
}

// addNeighbor sets holder's neighbor slot k to ref, skipping empty
// candidates so a neighbor slot never points at an empty node.
func (t *Tree) addNeighbor(holder *Node, slot int, ref NodeRef) {
	if t.Node(ref).IsEmpty {
		return
	}
	holder.Neighbors[slot] = ref
	holder.NNeighbor++
}
