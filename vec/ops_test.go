// Package vec_test contains unit tests for the mutating arithmetic methods
// and the non-mutating binary kernels.
package vec_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/vec"
	"github.com/stretchr/testify/require"
)

// mustVec builds a vector or aborts the test; shared tiny fixture helper.
func mustVec[T int | float32 | float64](t *testing.T, elems ...T) *vec.Vector[T] {
	t.Helper()
	v, err := vec.New(elems...)
	require.NoError(t, err)

	return v
}

// TestAddSubMutating verifies the in-place vector forms on both the vek
// fast path (float64) and the generic loop (int).
func TestAddSubMutating(t *testing.T) {
	// float64 → vek fast path.
	a := mustVec(t, 1.0, 2.0, 3.0)
	b := mustVec(t, 10.0, 20.0, 30.0)
	require.NoError(t, a.Add(b))
	require.Equal(t, "[11, 22, 33]", a.String())
	require.Equal(t, "[10, 20, 30]", b.String(), "operand must stay untouched")

	require.NoError(t, a.Sub(b))
	require.Equal(t, "[1, 2, 3]", a.String())

	// int → generic loop.
	x := mustVec(t, 1, 2)
	y := mustVec(t, 5, 7)
	require.NoError(t, x.Add(y))
	require.Equal(t, "[6, 9]", x.String())
}

// TestMulDivMutating verifies the element-wise product/quotient forms.
func TestMulDivMutating(t *testing.T) {
	a := mustVec(t, 2.0, 4.0, 8.0)
	b := mustVec(t, 3.0, 0.5, 2.0)
	require.NoError(t, a.Mul(b))
	require.Equal(t, "[6, 2, 16]", a.String())

	require.NoError(t, a.Div(b))
	require.Equal(t, "[2, 4, 8]", a.String()) // back to the original values
}

// TestScalarForms verifies the broadcast scalar arithmetic.
func TestScalarForms(t *testing.T) {
	v := mustVec(t, 1.0, 2.0, 3.0)
	require.NoError(t, v.AddScalar(10))
	require.Equal(t, "[11, 12, 13]", v.String())

	require.NoError(t, v.SubScalar(10))
	require.NoError(t, v.Scale(2))
	require.Equal(t, "[2, 4, 6]", v.String())

	require.NoError(t, v.DivScalar(2))
	require.Equal(t, "[1, 2, 3]", v.String())

	// Integer path exercises the plain loops.
	n := mustVec(t, 3, 6, 9)
	require.NoError(t, n.DivScalar(3))
	require.Equal(t, "[1, 2, 3]", n.String())
}

// TestDimensionMismatchSurfaces ensures shape violations hit the sentinel.
func TestDimensionMismatchSurfaces(t *testing.T) {
	a := mustVec(t, 1.0, 2.0)
	b := mustVec(t, 1.0, 2.0, 3.0)

	require.ErrorIs(t, a.Add(b), vec.ErrDimensionMismatch)
	require.ErrorIs(t, a.Div(b), vec.ErrDimensionMismatch)

	_, err := vec.Sub(a, b)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)

	var nilVec *vec.Vector[float64]
	require.ErrorIs(t, a.Add(nilVec), vec.ErrNilVector)
}

// TestBinaryKernelsPreserveOperands verifies the non-mutating forms return
// fresh results and leave both operands unchanged.
func TestBinaryKernelsPreserveOperands(t *testing.T) {
	a := mustVec(t, 1.0, 2.0, 3.0)
	b := mustVec(t, 4.0, 5.0, 6.0)

	sum, err := vec.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "[5, 7, 9]", sum.String())
	require.Equal(t, "[1, 2, 3]", a.String()) // receiver preserved
	require.Equal(t, "[4, 5, 6]", b.String()) // operand preserved

	prod, err := vec.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "[4, 10, 18]", prod.String())

	quot, err := vec.Div(b, a)
	require.NoError(t, err)
	require.Equal(t, "[4, 2.5, 2]", quot.String())
}

// TestMixedElementTypeKernels verifies the right-hand operand may use a
// different element type and converts into the left operand's domain.
func TestMixedElementTypeKernels(t *testing.T) {
	ints := mustVec(t, 1, 2, 3)
	floats := mustVec(t, 0.9, 1.9, 2.9)

	// int + float64 → elements convert into int (truncation toward zero).
	sum, err := vec.Add(ints, floats)
	require.NoError(t, err)
	require.Equal(t, "[1, 3, 5]", sum.String())

	// float64 + int → widening conversion into float64.
	back, err := vec.Add(floats, ints)
	require.NoError(t, err)
	require.Equal(t, "[1.9, 3.9, 5.9]", back.String())
}

// TestScalarKernelsPreserveSource verifies the non-mutating scalar forms.
func TestScalarKernelsPreserveSource(t *testing.T) {
	v := mustVec(t, 1.0, 2.0)
	scaled, err := vec.Scale(v, 3)
	require.NoError(t, err)
	require.Equal(t, "[3, 6]", scaled.String())
	require.Equal(t, "[1, 2]", v.String())
}

// TestDistanceAndLerp covers the supplementary geometry kernels.
func TestDistanceAndLerp(t *testing.T) {
	a := mustVec(t, 0.0, 0.0)
	b := mustVec(t, 3.0, 4.0)

	d, err := vec.Distance(a, b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-12) // 3-4-5 triangle

	mid, err := vec.Lerp(a, b, 0.5)
	require.NoError(t, err)
	require.Equal(t, "[1.5, 2]", mid.String())

	start, err := vec.Lerp(a, b, 0)
	require.NoError(t, err)
	require.True(t, start.Equal(a)) // t=0 reproduces the left operand
}
