// Package matrix implements a minimal generic dense matrix type used to pass
// rank×rank transfer operators, leaf interpolation operators and N×m charge
// and potential blocks around the tree and evaluator packages.
package matrix

import "golang.org/x/exp/constraints"

// Dense is a row-major dense matrix: Dense[i][j] is row i, column j.
// It is generalized from the teacher's utils/structs.Matrix[T] idiom
// (itself a [][]T) to the numeric types this module needs.
type Dense[T constraints.Float] [][]T

// New allocates a rows×cols matrix of zero values.
func New[T constraints.Float](rows, cols int) Dense[T] {
	m := make(Dense[T], rows)
	for i := range m {
		m[i] = make([]T, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Dense[T]) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Dense[T]) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Zero overwrites every entry with the zero value in place.
func (m Dense[T]) Zero() {
	for i := range m {
		for j := range m[i] {
			m[i][j] = 0
		}
	}
}

// Clone returns a deep copy.
func (m Dense[T]) Clone() Dense[T] {
	out := make(Dense[T], len(m))
	for i := range m {
		out[i] = append([]T(nil), m[i]...)
	}
	return out
}

// AddInPlace computes m += other, panicking on a shape mismatch.
func (m Dense[T]) AddInPlace(other Dense[T]) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		panic("matrix: AddInPlace shape mismatch")
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] += other[i][j]
		}
	}
}

// Mul computes a·b, a standard (rows_a × k)·(k × cols_b) product.
func Mul[T constraints.Float](a, b Dense[T]) Dense[T] {
	if a.Cols() != b.Rows() {
		panic("matrix: Mul shape mismatch")
	}
	k := a.Cols()
	out := New[T](a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		ai := a[i]
		oi := out[i]
		for p := 0; p < k; p++ {
			aip := ai[p]
			if aip == 0 {
				continue
			}
			bp := b[p]
			for j := 0; j < b.Cols(); j++ {
				oi[j] += aip * bp[j]
			}
		}
	}
	return out
}

// MulT computes aᵀ·b without materializing aᵀ, used throughout the upward
// (M2M) pass where the adjoint of a transfer operator is applied.
func MulT[T constraints.Float](a, b Dense[T]) Dense[T] {
	if a.Rows() != b.Rows() {
		panic("matrix: MulT shape mismatch")
	}
	out := New[T](a.Cols(), b.Cols())
	for p := 0; p < a.Rows(); p++ {
		ap := a[p]
		bp := b[p]
		for i := 0; i < a.Cols(); i++ {
			aip := ap[i]
			if aip == 0 {
				continue
			}
			oi := out[i]
			for j := 0; j < b.Cols(); j++ {
				oi[j] += aip * bp[j]
			}
		}
	}
	return out
}

// Transpose returns a new matrix with rows and columns swapped.
func Transpose[T constraints.Float](a Dense[T]) Dense[T] {
	out := New[T](a.Cols(), a.Rows())
	for i := range a {
		for j := range a[i] {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// RowsAt gathers the rows of m at the given indices into a new matrix,
// preserving order.
func RowsAt[T constraints.Float](m Dense[T], idx []int) Dense[T] {
	out := New[T](len(idx), m.Cols())
	for i, gi := range idx {
		copy(out[i], m[gi])
	}
	return out
}
