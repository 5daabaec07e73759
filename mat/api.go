// SPDX-License-Identifier: MIT
// Package mat — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package mat

import "github.com/katalvlaran/vecmat/scalar"

// NewZeros returns a new zero-initialized matrix of the given shape.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros[T scalar.Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ZerosLike[T scalar.Number](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires a square input.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n^2).
func IdentityLike[T scalar.Number](m *Dense[T]) (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity[T](m.r)
}

// Sum is an alias for Add: element-wise a + b. Complexity: O(r*c).
func Sum[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(r*c).
func Diff[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
func Product[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose: mᵀ as a fresh matrix. Complexity: O(r*c).
func T[E scalar.Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }
