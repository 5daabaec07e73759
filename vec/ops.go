// SPDX-License-Identifier: MIT
// Package vec: in-place element-wise arithmetic.
//
// Purpose:
//   - Provide the mutating half of the arithmetic surface: each method
//     rewrites the receiver and leaves the operand untouched.
//   - The non-mutating binary-operator forms live in kernels.go.
//
// Behavior highlights:
//   - Fast-path: plain []float64 / []float32 backing slices are handed to
//     viterin/vek (SIMD-accelerated); every other element type runs a fixed
//     deterministic loop.
//   - Integer division by a zero element is NOT guarded: it faults exactly
//     like the underlying Go division (see errors.go).

package vec

import (
	"fmt"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opDiv   = "Div"
	opDot   = "Dot"
	opCmp   = "Compare"
	opNorm  = "Norm"
	opCast  = "Cast"
	opLerp  = "Lerp"
	opDist  = "Distance"
	opPol   = "ToPolar"
	opCart  = "ToCartesian"
	opCross = "Cross"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil. Time O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add rewrites the receiver to v + w element-wise.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Determinism: vek fast-path or fixed 0..n-1 loop.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Add(w *Vector[T]) error {
	if err := validatePair(v, w); err != nil {
		return opErrorf(opAdd, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.Add_Inplace(xs, any(w.elems).([]float64))
	case []float32:
		vek32.Add_Inplace(xs, any(w.elems).([]float32))
	default:
		for i := range v.elems { // deterministic 0..n-1
			v.elems[i] += w.elems[i]
		}
	}

	return nil
}

// Sub rewrites the receiver to v − w element-wise.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Sub(w *Vector[T]) error {
	if err := validatePair(v, w); err != nil {
		return opErrorf(opSub, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.Sub_Inplace(xs, any(w.elems).([]float64))
	case []float32:
		vek32.Sub_Inplace(xs, any(w.elems).([]float32))
	default:
		for i := range v.elems {
			v.elems[i] -= w.elems[i]
		}
	}

	return nil
}

// Mul rewrites the receiver to the element-wise (Hadamard) product v ⊙ w.
// This is NOT a dot product; see Dot for the scalar reduction.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Mul(w *Vector[T]) error {
	if err := validatePair(v, w); err != nil {
		return opErrorf(opMul, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.Mul_Inplace(xs, any(w.elems).([]float64))
	case []float32:
		vek32.Mul_Inplace(xs, any(w.elems).([]float32))
	default:
		for i := range v.elems {
			v.elems[i] *= w.elems[i]
		}
	}

	return nil
}

// Div rewrites the receiver to the element-wise quotient v / w.
// Float element types propagate IEEE ±Inf/NaN on zero divisors; integer
// element types fault on a zero divisor (unguarded by design).
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Div(w *Vector[T]) error {
	if err := validatePair(v, w); err != nil {
		return opErrorf(opDiv, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.Div_Inplace(xs, any(w.elems).([]float64))
	case []float32:
		vek32.Div_Inplace(xs, any(w.elems).([]float32))
	default:
		for i := range v.elems {
			v.elems[i] /= w.elems[i]
		}
	}

	return nil
}

// AddScalar adds s to every element of the receiver.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(1).
func (v *Vector[T]) AddScalar(s T) error {
	if err := validateNotNil(v); err != nil {
		return opErrorf(opAdd, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.AddNumber_Inplace(xs, float64(s))
	case []float32:
		vek32.AddNumber_Inplace(xs, float32(s))
	default:
		for i := range v.elems {
			v.elems[i] += s
		}
	}

	return nil
}

// SubScalar subtracts s from every element of the receiver.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(1).
func (v *Vector[T]) SubScalar(s T) error {
	if err := validateNotNil(v); err != nil {
		return opErrorf(opSub, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.SubNumber_Inplace(xs, float64(s))
	case []float32:
		vek32.SubNumber_Inplace(xs, float32(s))
	default:
		for i := range v.elems {
			v.elems[i] -= s
		}
	}

	return nil
}

// Scale multiplies every element of the receiver by s.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(1).
func (v *Vector[T]) Scale(s T) error {
	if err := validateNotNil(v); err != nil {
		return opErrorf(opMul, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.MulNumber_Inplace(xs, float64(s))
	case []float32:
		vek32.MulNumber_Inplace(xs, float32(s))
	default:
		for i := range v.elems {
			v.elems[i] *= s
		}
	}

	return nil
}

// DivScalar divides every element of the receiver by s.
// Float element types propagate IEEE ±Inf/NaN when s == 0; integer element
// types fault (unguarded by design).
//
// Errors: ErrNilVector. Complexity: Time O(n), Space O(1).
func (v *Vector[T]) DivScalar(s T) error {
	if err := validateNotNil(v); err != nil {
		return opErrorf(opDiv, err)
	}
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.DivNumber_Inplace(xs, float64(s))
	case []float32:
		vek32.DivNumber_Inplace(xs, float32(s))
	default:
		for i := range v.elems {
			v.elems[i] /= s
		}
	}

	return nil
}
