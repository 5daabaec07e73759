// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// the single documented exception is integer division by a zero element,
// which faults exactly like the underlying Go division.

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with an operation tag at the call
// site — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows and columns must both be positive).
	ErrBadShape = errors.New("mat: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix's fixed shape.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub on differently shaped matrices, a Mul inner-dimension
	// mismatch, or a row/column vector of the wrong length.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare indicates a square-only operation (Det, Cofactor,
	// Adjugate, Inverse, TransposeInPlace) applied to a rectangular matrix.
	ErrNonSquare = errors.New("mat: matrix must be square")

	// ErrEmptySubMatrix indicates that a submatrix extraction would leave
	// fewer than one row or one column.
	ErrEmptySubMatrix = errors.New("mat: submatrix would be empty")

	// ErrSingular indicates an inversion attempt on a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("mat: matrix is singular")
)
