// Package mat_test contains unit tests for submatrix extraction.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/mat"
	"github.com/stretchr/testify/require"
)

// TestSubMatrixExtraction verifies row/column deletion with order-preserving
// survivors.
func TestSubMatrixExtraction(t *testing.T) {
	m := mustMat(t, 3, 4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12)

	// Remove the third row and the second column.
	sub, err := m.SubMatrix([]int{2}, []int{1})
	require.NoError(t, err)
	require.Equal(t, "| 1, 3, 4 |\n| 5, 7, 8 |\n", sub.String())

	// Empty removal lists yield a plain copy.
	same, err := m.SubMatrix(nil, nil)
	require.NoError(t, err)
	require.Equal(t, m.String(), same.String())

	// Duplicates in the removal lists are tolerated.
	dup, err := m.SubMatrix([]int{0, 0}, []int{3, 3})
	require.NoError(t, err)
	require.Equal(t, "| 5, 6, 7 |\n| 9, 10, 11 |\n", dup.String())

	// The result never aliases the source.
	require.NoError(t, sub.Set(0, 0, 99))
	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, orig)
}

// TestSubMatrixGates verifies the out-of-range and emptiness sentinels.
func TestSubMatrixGates(t *testing.T) {
	m := mustMat(t, 2, 2, 1, 2, 3, 4)

	_, err := m.SubMatrix([]int{2}, nil)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = m.SubMatrix(nil, []int{-1})
	require.ErrorIs(t, err, mat.ErrOutOfRange)

	// Removing every row (or column) leaves nothing to return.
	_, err = m.SubMatrix([]int{0, 1}, nil)
	require.ErrorIs(t, err, mat.ErrEmptySubMatrix)
	_, err = m.SubMatrix(nil, []int{0, 1})
	require.ErrorIs(t, err, mat.ErrEmptySubMatrix)
}
