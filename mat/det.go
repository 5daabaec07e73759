// SPDX-License-Identifier: MIT
// Package mat: square-matrix algebra via the classical adjugate route.
//
// Purpose:
//   - Determinant by recursive Laplace expansion along row 0.
//   - Cofactor and adjugate matrices built from first minors.
//   - Inverse as adjugate / determinant.
//
// Determinism & Performance:
//   - All loops run in fixed i→j order; results are fully reproducible.
//   - The expansion is O(N!) and intended for the small dimensions this
//     library targets (2, 3, 4). It is NOT an elimination-based solver.
//
// AI-Hints:
//   - Prefer float element types for Inverse: integer division truncates,
//     so an integer inverse is exact only when det divides every adjugate
//     entry.

package mat

// Det returns the determinant of a square receiver.
// N = 1 returns the sole element; N = 2 uses the closed form ad − bc;
// N > 2 expands along row 0 with alternating signs, recursing through
// first minors. Zero pivots skip their whole recursive branch.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(N!), Space O(N^2) per recursion level.
func (m *Dense[T]) Det() (T, error) {
	if err := validateSquare(m); err != nil {
		var zero T

		return zero, opErrorf(opDet, err)
	}

	return m.det(), nil
}

// det is the unvalidated recursive core; the receiver is known square.
func (m *Dense[T]) det() T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		// | a b |
		// | c d |  →  ad − bc
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var out T
	for j := 0; j < m.c; j++ { // expansion along row 0, fixed order
		pivot := m.data[j]
		if pivot == 0 {
			continue // zero pivot kills the whole branch
		}
		minor, _ := m.SubMatrix([]int{0}, []int{j}) // N ≥ 3, cannot fail
		term := pivot * minor.det()
		if j%2 == 0 { // (−1)^j sign by parity
			out += term
		} else {
			out -= term
		}
	}

	return out
}

// Invertible reports whether the determinant is exactly non-zero.
// Floating-point caveat: a numerically near-singular matrix with a tiny
// non-zero determinant still reports true; no epsilon is applied.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(N!) (delegates to Det).
func (m *Dense[T]) Invertible() (bool, error) {
	d, err := m.Det()
	if err != nil {
		return false, err
	}

	return d != 0, nil
}

// Cofactor returns the cofactor matrix: C[i][j] = (−1)^(i+j) · det(minor(i,j)).
// The 1×1 cofactor is defined as the 1×1 identity, which keeps
// M · adj(M) = det(M) · I valid down to N = 1.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(N^2 · (N−1)!), Space O(N^2).
func (m *Dense[T]) Cofactor() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, opErrorf(opCofactor, err)
	}
	if m.r == 1 {
		return NewIdentity[T](1)
	}
	out, err := NewDense[T](m.r, m.c)
	if err != nil {
		return nil, opErrorf(opCofactor, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			minor, _ := m.SubMatrix([]int{i}, []int{j}) // N ≥ 2, cannot fail
			d := minor.det()
			if (i+j)%2 == 1 { // checkerboard sign by parity
				d = -d
			}
			out.data[i*out.c+j] = d
		}
	}

	return out, nil
}

// Adjugate returns adj(M): the transpose of the cofactor matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(N^2 · (N−1)!), Space O(N^2).
func (m *Dense[T]) Adjugate() (*Dense[T], error) {
	cof, err := m.Cofactor()
	if err != nil {
		return nil, opErrorf(opAdjugate, err)
	}
	_ = cof.TransposeInPlace() // cofactor is square by construction

	return cof, nil
}

// Inverse returns M⁻¹ = adj(M) / det(M) as a fresh matrix, so that
// M · M⁻¹ = I. Integer element types divide with truncation (see the
// package AI-Hints); float types divide exactly per IEEE.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular when det == 0.
// Complexity: Time O(N^2 · (N−1)!), Space O(N^2).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	d := m.det()
	if d == 0 {
		return nil, opErrorf(opInverse, ErrSingular)
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	_ = adj.DivScalar(d) // non-nil by construction

	return adj, nil
}
