// Package mat_test contains unit tests for the product kernels and the
// transpose pair.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/mat"
	"github.com/katalvlaran/vecmat/vec"
	"github.com/stretchr/testify/require"
)

// TestMulProduct verifies the row-by-column product against hand-computed
// values and the identity law.
func TestMulProduct(t *testing.T) {
	a := mustMat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustMat(t, 3, 2, 7, 8, 9, 10, 11, 12)

	p, err := mat.Mul(a, b)
	require.NoError(t, err)
	// (1·7+2·9+3·11, 1·8+2·10+3·12; 4·7+5·9+6·11, 4·8+5·10+6·12)
	require.Equal(t, "| 58, 64 |\n| 139, 154 |\n", p.String())

	// I · M == M · I == M.
	m := mustMat(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	id, err := mat.NewIdentity[float64](2)
	require.NoError(t, err)
	left, err := mat.Mul(id, m)
	require.NoError(t, err)
	require.Equal(t, m.String(), left.String())
	right, err := mat.Mul(m, id)
	require.NoError(t, err)
	require.Equal(t, m.String(), right.String())

	// Inner-dimension gate: Cols(a) == 3 never matches Rows == 2.
	square, err := mat.NewIdentity[int](2)
	require.NoError(t, err)
	_, err = mat.Mul(a, square)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)

	// Nil operands surface the nil sentinel, not a crash.
	_, err = mat.Mul(a, nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// TestMulVecColumnConvention verifies M × x with x as a column vector.
func TestMulVecColumnConvention(t *testing.T) {
	m := mustMat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	x, err := vec.New(1, 0, 2)
	require.NoError(t, err)

	y, err := mat.MulVec(m, x)
	require.NoError(t, err)
	require.Equal(t, "[7, 16]", y.String()) // (1+0+6, 4+0+12)

	short, err := vec.New(1, 2)
	require.NoError(t, err)
	_, err = mat.MulVec(m, short)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.MulVec(m, nil)
	require.ErrorIs(t, err, vec.ErrNilVector)
}

// TestTransposeInvolution verifies (Mᵀ)ᵀ == M and the rectangular shape flip.
func TestTransposeInvolution(t *testing.T) {
	m := mustMat(t, 2, 3, 1, 2, 3, 4, 5, 6)

	tr, err := mat.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, "| 1, 4 |\n| 2, 5 |\n| 3, 6 |\n", tr.String())

	back, err := mat.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, m.String(), back.String())
}

// TestTransposeInPlace verifies the allocation-free square form and its
// non-square gate.
func TestTransposeInPlace(t *testing.T) {
	m := mustMat(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.TransposeInPlace())
	require.Equal(t, "| 1, 3 |\n| 2, 4 |\n", m.String())

	rect := mustMat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.ErrorIs(t, rect.TransposeInPlace(), mat.ErrNonSquare)
}
