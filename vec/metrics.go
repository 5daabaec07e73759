// SPDX-License-Identifier: MIT
// Package vec: magnitude, dot product, ordering and equality.
//
// Numeric policy:
//   - Mag2/Mag always accumulate in float64, regardless of the element type,
//     to dodge integer overflow and float32 precision loss in the squares.
//   - Dot stays typed as T: it is the algebraic reduction the matrix kernels
//     build on, and its result must live in the element domain.

package vec

import (
	"math"

	"github.com/viterin/vek"
)

// Mag2 returns the sum of squared elements as a float64, regardless of T.
// The zero vector (and only a vector with all-zero slots) yields exactly 0.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Mag2() float64 {
	// Fast-path: a plain []float64 backing slice is a vek dot with itself.
	if xs, ok := any(v.elems).([]float64); ok {
		return vek.Dot(xs, xs)
	}

	// Fallback: widen every element to float64 before squaring.
	var sum float64
	for _, e := range v.elems { // fixed 0..n-1 order
		f := float64(e)
		sum += f * f
	}

	return sum
}

// Mag returns the Euclidean magnitude √(Mag2()) as a float64.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Mag() float64 {
	return math.Sqrt(v.Mag2())
}

// Dot returns the sum of element-wise products, typed as T.
// Commutative: a.Dot(b) == b.Dot(a) for identical dimensions.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var zero T
	if err := validatePair(v, w); err != nil {
		return zero, opErrorf(opDot, err)
	}
	// Fast-path: float64 storage reduces through vek.
	if xs, ok := any(v.elems).([]float64); ok {
		return T(vek.Dot(xs, any(w.elems).([]float64))), nil
	}

	// Fallback: accumulate in the element domain (result is typed T).
	acc := zero
	for i := range v.elems { // fixed 0..n-1 order
		acc += v.elems[i] * w.elems[i]
	}

	return acc, nil
}

// Compare orders two vectors by magnitude: −1 when v is shorter, 0 when the
// magnitudes are equal, +1 when v is longer.
//
// This is a MAGNITUDE ordering, not a lexicographic one: two element-wise
// different vectors can compare equal (e.g. [3,4] and [5,0]). It is not a
// total order on vector identity — use Equal for element-wise identity.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Compare(w *Vector[T]) (int, error) {
	if err := validatePair(v, w); err != nil {
		return 0, opErrorf(opCmp, err)
	}
	a, b := v.Mag2(), w.Mag2() // squared magnitudes suffice for ordering
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports element-wise equality (distinct from the magnitude ordering
// above). A nil argument or a dimension mismatch is simply "not equal".
// NaN elements follow IEEE semantics: a vector holding NaN never equals
// anything, including itself.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil || len(v.elems) != len(w.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != w.elems[i] {
			return false
		}
	}

	return true
}
