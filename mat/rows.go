// SPDX-License-Identifier: MIT
// Package mat: row/column views and elementary row operations.
//
// Purpose:
//   - Bridge matrices and vectors: Row/Col extract independent *vec.Vector
//     copies, SetRow/SetCol scatter a vector back into the storage.
//   - Provide the elementary row operations used by hand-rolled elimination.
//
// Behavior highlights:
//   - Row/Col NEVER alias the backing storage; mutating the returned vector
//     leaves the matrix untouched.
//   - RowAdd OVERWRITES the destination row with factor·src; it is not
//     accumulated into. See the method doc.

package mat

import (
	"github.com/katalvlaran/vecmat/vec"
)

// Row returns row i as an independent vector copy of length Cols().
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(c).
func (m *Dense[T]) Row(i int) (*vec.Vector[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opRow, err)
	}
	if err := validateRow(m, i); err != nil {
		return nil, opErrorf(opRow, err)
	}

	// vec.New copies its arguments, so the storage is never aliased.
	return vec.New(m.data[i*m.c : (i+1)*m.c]...)
}

// Col returns column j as an independent vector copy of length Rows().
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r), Space O(r).
func (m *Dense[T]) Col(j int) (*vec.Vector[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opCol, err)
	}
	if err := validateCol(m, j); err != nil {
		return nil, opErrorf(opCol, err)
	}
	column := make([]T, m.r)
	for i := 0; i < m.r; i++ { // strided gather, fixed order
		column[i] = m.data[i*m.c+j]
	}

	return vec.New(column...)
}

// SetRow overwrites row i with the elements of v (length must equal Cols()).
// The vector is copied in; later mutation of v does not affect the matrix.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: Time O(c), Space O(1).
func (m *Dense[T]) SetRow(i int, v *vec.Vector[T]) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opSetRow, err)
	}
	if err := validateRow(m, i); err != nil {
		return opErrorf(opSetRow, err)
	}
	if v == nil {
		return opErrorf(opSetRow, validatorErrorf("SetRow", vec.ErrNilVector))
	}
	if v.Dim() != m.c {
		return opErrorf(opSetRow, validatorErrorf("SetRow", ErrDimensionMismatch))
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		e, _ := v.At(j) // bounds pre-validated against Dim
		m.data[base+j] = e
	}

	return nil
}

// SetCol overwrites column j with the elements of v (length must equal Rows()).
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: Time O(r), Space O(1).
func (m *Dense[T]) SetCol(j int, v *vec.Vector[T]) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opSetCol, err)
	}
	if err := validateCol(m, j); err != nil {
		return opErrorf(opSetCol, err)
	}
	if v == nil {
		return opErrorf(opSetCol, validatorErrorf("SetCol", vec.ErrNilVector))
	}
	if v.Dim() != m.r {
		return opErrorf(opSetCol, validatorErrorf("SetCol", ErrDimensionMismatch))
	}
	for i := 0; i < m.r; i++ { // strided scatter, fixed order
		e, _ := v.At(i)
		m.data[i*m.c+j] = e
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a
// no-op.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func (m *Dense[T]) SwapRows(i, j int) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if err := validateRow(m, i); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if err := validateRow(m, j); err != nil {
		return opErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ScaleRow multiplies every element of row i by factor, in place.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func (m *Dense[T]) ScaleRow(i int, factor T) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opScaleRow, err)
	}
	if err := validateRow(m, i); err != nil {
		return opErrorf(opScaleRow, err)
	}
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] *= factor
	}

	return nil
}

// RowAdd OVERWRITES row dst with factor·(row src): dst[k] = factor * src[k].
// Despite the name this is a replacement, not an accumulation; the classical
// elimination step dst += factor·src is obtained by scaling into a scratch
// row and adding via SetRow. Kept as-is for compatibility.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func (m *Dense[T]) RowAdd(dst int, factor T, src int) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opRowAdd, err)
	}
	if err := validateRow(m, dst); err != nil {
		return opErrorf(opRowAdd, err)
	}
	if err := validateRow(m, src); err != nil {
		return opErrorf(opRowAdd, err)
	}
	bd, bs := dst*m.c, src*m.c
	for k := 0; k < m.c; k++ { // replacement, see doc above
		m.data[bd+k] = factor * m.data[bs+k]
	}

	return nil
}
