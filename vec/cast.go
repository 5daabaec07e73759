// SPDX-License-Identifier: MIT
// Package vec: element-type and dimension casting.

package vec

import "github.com/katalvlaran/vecmat/scalar"

// Cast converts v into a fresh vector with element type U and dimension n.
// Every retained element goes through Go's standard numeric conversion from
// T to U; when n exceeds the source dimension the new tail slots are
// zero-initialized, and when n is smaller the trailing elements are dropped.
// The source vector is never modified.
//
// Errors: ErrNilVector, ErrBadDimension (n <= 0).
// Complexity: Time O(n), Space O(n).
func Cast[T, U scalar.Number](v *Vector[T], n int) (*Vector[U], error) {
	if err := validateNotNil(v); err != nil {
		return nil, opErrorf(opCast, err)
	}
	out, err := Zero[U](n) // zero-fill covers any grown tail
	if err != nil {
		return nil, opErrorf(opCast, err)
	}
	keep := scalar.Min(n, len(v.elems)) // elements that survive the resize
	for i := 0; i < keep; i++ {         // fixed 0..keep-1 order
		out.elems[i] = scalar.Cast[T, U](v.elems[i])
	}

	return out, nil
}
