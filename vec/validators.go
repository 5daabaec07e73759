// SPDX-License-Identifier: MIT
// Package: vec
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/methods minimal by delegating nil/dimension checks here.
//   - Return wrapped sentinel errors so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package vec

import (
	"fmt"

	"github.com/katalvlaran/vecmat/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the vector reference is non-nil.
// Returns ErrNilVector when v == nil. Complexity: O(1).
func validateNotNil[T scalar.Number](v *Vector[T]) error {
	if v == nil {
		return validatorErrorf("validateNotNil", ErrNilVector)
	}

	return nil
}

// validatePair — composite: NotNil(a) → NotNil(b) → equal dimensions.
// The two operands may carry different element types; only the lengths are
// compared. Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(1).
func validatePair[T, U scalar.Number](a *Vector[T], b *Vector[U]) error {
	if a == nil || b == nil {
		return validatorErrorf("validatePair", ErrNilVector)
	}
	if len(a.elems) != len(b.elems) {
		return validatorErrorf("validatePair", ErrDimensionMismatch)
	}

	return nil
}

// validateDim ensures v is non-nil and has exactly dim elements.
// Used by the dimension-gated operations (ToPolar: 2, Cross: 3).
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(1).
func validateDim[T scalar.Number](v *Vector[T], dim int) error {
	if v == nil {
		return validatorErrorf("validateDim", ErrNilVector)
	}
	if len(v.elems) != dim {
		return validatorErrorf("validateDim", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex ensures 0 ≤ i < Dim(v); assumes v is non-nil.
// Errors: ErrOutOfRange. Complexity: O(1).
func validateIndex[T scalar.Number](v *Vector[T], i int) error {
	if i < 0 || i >= len(v.elems) {
		return validatorErrorf("validateIndex", ErrOutOfRange)
	}

	return nil
}
