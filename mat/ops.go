// SPDX-License-Identifier: MIT
// Package mat: in-place element-wise arithmetic.
//
// Purpose:
//   - Provide the mutating half of the arithmetic surface: each method
//     rewrites the receiver's flat storage and leaves the operand untouched.
//   - The non-mutating kernel forms live in kernels.go.
//
// Behavior highlights:
//   - Fast-path: plain []float64 / []float32 backing slices are handed to
//     viterin/vek (SIMD-accelerated); every other element type runs a fixed
//     deterministic flat loop.
//   - Integer division by a zero scalar is NOT guarded: it faults exactly
//     like the underlying Go division (see errors.go).

package mat

import (
	"fmt"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opDiv       = "DivScalar"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opRow       = "Row"
	opCol       = "Col"
	opSetRow    = "SetRow"
	opSetCol    = "SetCol"
	opSwapRows  = "SwapRows"
	opScaleRow  = "ScaleRow"
	opRowAdd    = "RowAdd"
	opSubMatrix = "SubMatrix"
	opDet       = "Det"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil. Time O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add rewrites the receiver to m + n element-wise (same shape required).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: vek fast-path or fixed flat 0..rc-1 loop.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Add(n *Dense[T]) error {
	if err := validateSameShape(m, n); err != nil {
		return opErrorf(opAdd, err)
	}
	switch xs := any(m.data).(type) {
	case []float64:
		vek.Add_Inplace(xs, any(n.data).([]float64))
	case []float32:
		vek32.Add_Inplace(xs, any(n.data).([]float32))
	default:
		for i := range m.data { // deterministic flat order
			m.data[i] += n.data[i]
		}
	}

	return nil
}

// Sub rewrites the receiver to m − n element-wise (same shape required).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Sub(n *Dense[T]) error {
	if err := validateSameShape(m, n); err != nil {
		return opErrorf(opSub, err)
	}
	switch xs := any(m.data).(type) {
	case []float64:
		vek.Sub_Inplace(xs, any(n.data).([]float64))
	case []float32:
		vek32.Sub_Inplace(xs, any(n.data).([]float32))
	default:
		for i := range m.data {
			m.data[i] -= n.data[i]
		}
	}

	return nil
}

// Scale multiplies every element of the receiver by alpha.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Scale(alpha T) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opScale, err)
	}
	switch xs := any(m.data).(type) {
	case []float64:
		vek.MulNumber_Inplace(xs, float64(alpha))
	case []float32:
		vek32.MulNumber_Inplace(xs, float32(alpha))
	default:
		for i := range m.data {
			m.data[i] *= alpha
		}
	}

	return nil
}

// DivScalar divides every element of the receiver by alpha.
// Float element types propagate IEEE ±Inf/NaN when alpha == 0; integer
// element types fault (unguarded by design).
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) DivScalar(alpha T) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opDiv, err)
	}
	switch xs := any(m.data).(type) {
	case []float64:
		vek.DivNumber_Inplace(xs, float64(alpha))
	case []float32:
		vek32.DivNumber_Inplace(xs, float32(alpha))
	default:
		for i := range m.data {
			m.data[i] /= alpha
		}
	}

	return nil
}
