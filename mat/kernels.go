// SPDX-License-Identifier: MIT
// Package mat: non-mutating element-wise kernels.
//
// Purpose:
//   - Provide the binary-operator forms of the arithmetic surface: each
//     kernel allocates a fresh result and leaves both operands untouched.
//   - Shapes are validated once up front; the hot loops run unguarded.
//
// Determinism:
//   - Every kernel clones the left operand and delegates to the mutating
//     method, so float64/float32 storage takes the same vek fast path.

package mat

import "github.com/katalvlaran/vecmat/scalar"

// Add returns the element-wise sum a + b as a fresh matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	out := a.Clone()
	_ = out.Add(b) // shapes pre-validated, cannot fail

	return out, nil
}

// Sub returns the element-wise difference a − b as a fresh matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	out := a.Clone()
	_ = out.Sub(b)

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b as a fresh matrix.
// This is NOT the matrix product; see Mul for the row-by-column form.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	out := a.Clone()
	for i := range out.data { // deterministic flat order
		out.data[i] *= b.data[i]
	}

	return out, nil
}

// Scale returns a fresh matrix with every element of m multiplied by alpha.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Scale[T scalar.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	out := m.Clone()
	_ = out.Scale(alpha)

	return out, nil
}

// DivScalar returns a fresh matrix with every element of m divided by alpha.
// Zero alpha follows T's division semantics (see the method form).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func DivScalar[T scalar.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opDiv, err)
	}
	out := m.Clone()
	_ = out.DivScalar(alpha)

	return out, nil
}
