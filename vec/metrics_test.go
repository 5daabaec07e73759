// Package vec_test contains unit tests for magnitude, dot product,
// magnitude ordering and element-wise equality.
package vec_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/vec"
	"github.com/stretchr/testify/require"
)

// TestMag2AlwaysFloat64 verifies the float64 accumulation policy across
// element types, including values that would overflow small integers.
func TestMag2AlwaysFloat64(t *testing.T) {
	f := mustVec(t, 3.0, 4.0)
	require.InDelta(t, 25.0, f.Mag2(), 1e-12)
	require.InDelta(t, 5.0, f.Mag(), 1e-12)

	// int16 squares would overflow in-domain; float64 accumulation must not.
	big, err := vec.New[int16](300, 300)
	require.NoError(t, err)
	require.InDelta(t, 180000.0, big.Mag2(), 1e-12)

	f32 := mustVec(t, float32(3), float32(4))
	require.InDelta(t, 25.0, f32.Mag2(), 1e-6)
}

// TestDotCommutativeAndTyped verifies dot commutes and stays in T.
func TestDotCommutativeAndTyped(t *testing.T) {
	// Spec case: Vector3(1,3,-5) · Vector3(4,-2,-1) == 3.
	a := mustVec(t, 1, 3, -5)
	b := mustVec(t, 4, -2, -1)

	ab, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 3, ab)

	ba, err := b.Dot(a)
	require.NoError(t, err)
	require.Equal(t, ab, ba, "dot must be commutative")

	// float64 path (vek) agrees with the hand computation.
	fa := mustVec(t, 1.0, 3.0, -5.0)
	fb := mustVec(t, 4.0, -2.0, -1.0)
	fd, err := fa.Dot(fb)
	require.NoError(t, err)
	require.InDelta(t, 3.0, fd, 1e-12)

	// Shape mismatch surfaces the sentinel.
	short := mustVec(t, 1, 2)
	_, err = a.Dot(short)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

// TestCompareIsMagnitudeOrdering documents the ordering semantics: two
// element-wise different vectors with equal magnitude compare as equal.
func TestCompareIsMagnitudeOrdering(t *testing.T) {
	a := mustVec(t, 3.0, 4.0) // |a|² = 25
	b := mustVec(t, 5.0, 0.0) // |b|² = 25, but a ≠ b element-wise
	c := mustVec(t, 6.0, 0.0) // |c|² = 36

	cmp, err := a.Compare(b)
	require.NoError(t, err)
	require.Zero(t, cmp, "equal magnitudes compare as equal")
	require.False(t, a.Equal(b), "equality stays element-wise")

	cmp, err = a.Compare(c)
	require.NoError(t, err)
	require.Equal(t, -1, cmp) // smaller magnitude orders first

	cmp, err = c.Compare(a)
	require.NoError(t, err)
	require.Equal(t, 1, cmp)
}

// TestEqualElementwise verifies equality is not magnitude-based and treats
// nil/mismatched operands as "not equal" rather than erroring.
func TestEqualElementwise(t *testing.T) {
	a := mustVec(t, 1, 2, 3)
	b := mustVec(t, 1, 2, 3)
	c := mustVec(t, 3, 2, 1)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "same magnitude, different elements")
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(mustVec(t, 1, 2)))
}
