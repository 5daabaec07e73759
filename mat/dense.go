// SPDX-License-Identifier: MIT
// Package mat provides the fixed-shape generic dense matrix that the affine
// builders sit on. A Dense owns a flat row-major backing slice whose shape
// is fixed at construction time; index(i, j) = i*cols + j.

package mat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/scalar"
)

// Dense is a row-major r×c matrix of Number elements.
// The shape never changes after construction; every operation either
// preserves it or returns a freshly allocated matrix. Instances never share
// storage: use Clone for an independent copy.
type Dense[T scalar.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c, row-major
}

// NewDense creates an r×c matrix initialized to zeros (the "empty" factory:
// every cell holds T's zero value).
//
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Number](rows, cols int) (*Dense[T], error) {
	// Validate the requested shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFromSlice builds an r×c matrix from a full row-major element list:
// elems[0..c-1] is row 0, elems[c..2c-1] is row 1, and so on. The elements
// are copied, so the caller's slice (when expanded with ...) is never aliased.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0;
//   - ErrDimensionMismatch when len(elems) != rows*cols.
//
// Complexity: O(r*c) copy.
func NewFromSlice[T scalar.Number](rows, cols int, elems ...T) (*Dense[T], error) {
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(elems) != rows*cols {
		return nil, validatorErrorf("NewFromSlice", ErrDimensionMismatch)
	}
	copy(out.data, elems)

	return out, nil
}

// NewFromRows builds a matrix from nested row slices; the shape is
// len(rows) × len(rows[0]). Every row must have the same length (ragged
// input is rejected). The rows are copied, never aliased.
//
// Errors: ErrBadShape on empty input, ErrDimensionMismatch on ragged rows.
// Complexity: O(r*c) copy.
func NewFromRows[T scalar.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	out, err := NewDense[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows { // deterministic row order
		if len(row) != out.c {
			return nil, validatorErrorf("NewFromRows", ErrDimensionMismatch)
		}
		copy(out.data[i*out.c:(i+1)*out.c], row)
	}

	return out, nil
}

// NewFilled returns an r×c matrix with every cell set to v
// (single-value broadcast construction).
//
// Errors: ErrBadShape. Complexity: O(r*c) fill.
func NewFilled[T scalar.Number](rows, cols int, v T) (*Dense[T], error) {
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range out.data { // flat deterministic fill
		out.data[i] = v
	}

	return out, nil
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
//
// Errors: ErrBadShape when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T scalar.Number](n int) (*Dense[T], error) {
	out, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		out.data[i*n+i] = 1
	}

	return out, nil
}

// Clone returns a deep copy; mutating the copy never affects the receiver.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Rows returns the fixed row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the fixed column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(i, j int) (int, error) {
	if err := validateRow(m, i); err != nil {
		return 0, err
	}
	if err := validateCol(m, j); err != nil {
		return 0, err
	}

	return i*m.c + j, nil
}

// At retrieves the element at (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// String implements fmt.Stringer: one "| e0, e1, ... |" line per row,
// each terminated by a newline.
// Complexity: O(r*c) string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // fixed row order for stable output
		sb.WriteString("| ")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(" |\n")
	}

	return sb.String()
}
