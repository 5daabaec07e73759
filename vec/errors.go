// SPDX-License-Identifier: MIT
// Package vec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vec
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// the single documented exception is integer division by a zero element,
// which faults exactly like the underlying Go division.

package vec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vec: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with an operation tag at the call
// site — callers will still use errors.Is to match.

var (
	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vec: nil vector")

	// ErrBadDimension is returned when a requested dimension is invalid
	// (a vector must hold at least one element).
	ErrBadDimension = errors.New("vec: dimension must be > 0")

	// ErrOutOfRange indicates that an element index (or a named accessor such
	// as Z on a 2-element vector) is outside the vector's fixed dimension.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Dot on vectors of different lengths, or a float-only
	// operation (ToPolar, Cross) applied to a vector of the wrong dimension.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")
)
