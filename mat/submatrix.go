// SPDX-License-Identifier: MIT
// Package mat: submatrix extraction.

package mat

// SubMatrix returns a fresh matrix with the listed rows and columns removed.
// The surviving rows and columns keep their relative order; duplicate
// indices in the removal lists are tolerated (a row deleted twice is simply
// deleted). Passing empty lists yields a plain copy.
//
// Errors:
//   - ErrNilMatrix on a nil receiver;
//   - ErrOutOfRange when any listed index falls outside the shape;
//   - ErrEmptySubMatrix when fewer than one row or one column would remain.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) SubMatrix(removeRows, removeCols []int) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opSubMatrix, err)
	}

	// Build keep masks; validation and de-duplication in one pass each.
	keepRow := make([]bool, m.r)
	for i := range keepRow {
		keepRow[i] = true
	}
	for _, i := range removeRows {
		if i < 0 || i >= m.r {
			return nil, opErrorf(opSubMatrix, validatorErrorf("SubMatrix", ErrOutOfRange))
		}
		keepRow[i] = false
	}
	keepCol := make([]bool, m.c)
	for j := range keepCol {
		keepCol[j] = true
	}
	for _, j := range removeCols {
		if j < 0 || j >= m.c {
			return nil, opErrorf(opSubMatrix, validatorErrorf("SubMatrix", ErrOutOfRange))
		}
		keepCol[j] = false
	}

	// Count survivors.
	var rows, cols int
	for _, k := range keepRow {
		if k {
			rows++
		}
	}
	for _, k := range keepCol {
		if k {
			cols++
		}
	}
	if rows == 0 || cols == 0 {
		return nil, opErrorf(opSubMatrix, validatorErrorf("SubMatrix", ErrEmptySubMatrix))
	}

	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, opErrorf(opSubMatrix, err)
	}
	// Compact gather: walk the source in row-major order, copying survivors.
	var dst int
	for i := 0; i < m.r; i++ {
		if !keepRow[i] {
			continue
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !keepCol[j] {
				continue
			}
			out.data[dst] = m.data[base+j]
			dst++
		}
	}

	return out, nil
}
