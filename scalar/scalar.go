// SPDX-License-Identifier: MIT
// Package scalar: numeric constraints and conversion helpers.
// This file defines ONLY the type-set constraints and pure generic helpers
// used across vec, mat and affine. No package state, no allocation.

package scalar

import "golang.org/x/exp/constraints"

// Number is the element-type constraint for every vector and matrix in
// vecmat: any built-in (or derived) integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the floating-point subset of Number. Operations that divide by a
// magnitude or evaluate transcendentals (Norm, ToPolar, Cross, rotations)
// are constrained to Float so integer element types cannot reach them.
type Float interface {
	~float32 | ~float64
}

// Cast converts v from one Number type to another using Go's standard
// numeric conversion rules (truncation toward zero for float→int,
// widening/narrowing for int↔int). Deterministic, O(1).
func Cast[T, U Number](v T) U {
	return U(v)
}

// Abs returns |x|. For the most negative value of a signed integer type the
// result wraps (Go conversion semantics); callers working near MinInt must
// widen first. O(1).
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Min returns the smaller of x and y. O(1).
func Min[T Number](x, y T) T {
	if x < y {
		return x
	}

	return y
}

// Max returns the larger of x and y. O(1).
func Max[T Number](x, y T) T {
	if x > y {
		return x
	}

	return y
}
