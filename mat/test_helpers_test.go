// Package mat_test: shared fixtures for the matrix tests.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/mat"
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/stretchr/testify/require"
)

// mustMat builds a matrix from a row-major element list or aborts the test.
func mustMat[T scalar.Number](t *testing.T, rows, cols int, elems ...T) *mat.Dense[T] {
	t.Helper()
	m, err := mat.NewFromSlice(rows, cols, elems...)
	require.NoError(t, err)

	return m
}

// requireMatInDelta asserts element-wise closeness of two same-shaped
// float64 matrices.
func requireMatInDelta(t *testing.T, want, got *mat.Dense[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, tol, "cell (%d,%d)", i, j)
		}
	}
}
