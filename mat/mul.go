// SPDX-License-Identifier: MIT
// Package mat: matrix product, matrix-vector product and transpose.
//
// Purpose:
//   - Provide the row-by-column product kernels on the flat row-major
//     storage, plus the transpose pair (fresh kernel + square in-place form).
//
// Determinism & Performance:
//   - Mul runs the cache-friendly i→k→j loop order over flat buffers and
//     skips zero left-hand elements (sparse-ish inputs get cheaper).
//   - No hidden allocations beyond the output; O(r*n*c) time for Mul.

package mat

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vec"
)

// Mul returns the matrix product a × b as a fresh matrix of shape
// Rows(a) × Cols(b). The inner dimensions must agree: Cols(a) == Rows(b).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed i→k→j loop order; zero left elements are skipped.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, validatorErrorf("Mul", ErrNilMatrix))
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, validatorErrorf("Mul", ErrDimensionMismatch))
	}
	out, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		baseA, baseO := i*a.c, i*out.c
		for k := 0; k < a.c; k++ {
			aik := a.data[baseA+k]
			if aik == 0 {
				continue // zero row element contributes nothing
			}
			baseB := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[baseO+j] += aik * b.data[baseB+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the product m × x as a fresh vector of length Rows(m),
// treating x as a column vector (Dim(x) must equal Cols(m)).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MulVec[T scalar.Number](m *Dense[T], x *vec.Vector[T]) (*vec.Vector[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	if x == nil {
		return nil, opErrorf(opMulVec, validatorErrorf("MulVec", vec.ErrNilVector))
	}
	if x.Dim() != m.c {
		return nil, opErrorf(opMulVec, validatorErrorf("MulVec", ErrDimensionMismatch))
	}

	// Stage the operand once to avoid per-cell accessor calls in the loop.
	xs := make([]T, m.c)
	for j := 0; j < m.c; j++ {
		xs[j], _ = x.At(j) // bounds pre-validated against Dim
	}
	result := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var sum T
		for j := 0; j < m.c; j++ { // fixed j order
			sum += m.data[base+j] * xs[j]
		}
		result[i] = sum
	}

	return vec.New(result...)
}

// Transpose returns mᵀ as a fresh Cols(m) × Rows(m) matrix.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T scalar.Number](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	out, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[base+j]
		}
	}

	return out, nil
}

// TransposeInPlace mirrors a square receiver across its main diagonal
// without allocating.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n^2), Space O(1).
func (m *Dense[T]) TransposeInPlace() error {
	if err := validateSquare(m); err != nil {
		return opErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ { // upper triangle only
			a, b := i*m.c+j, j*m.c+i
			m.data[a], m.data[b] = m.data[b], m.data[a]
		}
	}

	return nil
}
