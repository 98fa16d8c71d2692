// Package slicesx implements the small index-set helpers the tree builder
// needs, grounded on the generic-container idiom of
// the teacher's utils/structs package.
package slicesx

// Partition splits idx into two new slices according to pred: indices for
// which pred reports true go left, the rest go right. Order within each
// side is preserved, matching the tree builder's append-in-scan-order
// particle assignment.
func Partition(idx []int, pred func(i int) bool) (left, right []int) {
	left = make([]int, 0, len(idx))
	right = make([]int, 0, len(idx))
	for _, i := range idx {
		if pred(i) {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return
}

// AllEqual reports whether every value in vals is equal to the first,
// within the given tolerance. Used by the tree builder's duplicate-point
// leaf termination (SPEC_FULL.md §4.3 expansion).
func AllEqual(vals []float64, tol float64) bool {
	if len(vals) <= 1 {
		return true
	}
	first := vals[0]
	for _, v := range vals[1:] {
		if abs(v-first) > tol {
			return false
		}
	}
	return true
}

// Range returns [0, n) as a freshly allocated slice, used to seed the root
// node's particle index set.
func Range(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
