// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/methods minimal by delegating nil/shape checks here.
//   - Return wrapped sentinel errors so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package mat

import (
	"fmt"

	"github.com/katalvlaran/vecmat/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix when m == nil. Complexity: O(1).
func validateNotNil[T scalar.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameShape — composite: NotNil(a) → NotNil(b) → identical shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func validateSameShape[T scalar.Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("validateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("validateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures m is non-nil and has Rows() == Cols().
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func validateSquare[T scalar.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("validateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("validateSquare", ErrNonSquare)
	}

	return nil
}

// validateRow ensures 0 ≤ i < Rows(m); assumes m is non-nil.
// Errors: ErrOutOfRange. Complexity: O(1).
func validateRow[T scalar.Number](m *Dense[T], i int) error {
	if i < 0 || i >= m.r {
		return validatorErrorf("validateRow", ErrOutOfRange)
	}

	return nil
}

// validateCol ensures 0 ≤ j < Cols(m); assumes m is non-nil.
// Errors: ErrOutOfRange. Complexity: O(1).
func validateCol[T scalar.Number](m *Dense[T], j int) error {
	if j < 0 || j >= m.c {
		return validatorErrorf("validateCol", ErrOutOfRange)
	}

	return nil
}
