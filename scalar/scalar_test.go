// Package scalar_test contains unit tests for the numeric constraints and
// generic scalar helpers of the scalar package.
package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/scalar"
	"github.com/stretchr/testify/require"
)

// floatTol is the comparison tolerance for float64 assertions.
const floatTol = 1e-12

// float32Tol is the (coarser) comparison tolerance for float32 assertions.
const float32Tol = 1e-6

// TestCastNumericConversions verifies Cast follows Go conversion semantics.
func TestCastNumericConversions(t *testing.T) {
	require.Equal(t, 3, scalar.Cast[float64, int](3.9))      // float→int truncates toward zero
	require.Equal(t, -3, scalar.Cast[float64, int](-3.9))    // negative truncation too
	require.Equal(t, 7.0, scalar.Cast[int, float64](7))      // int widens exactly
	require.Equal(t, int8(-128), scalar.Cast[int, int8](-128)) // exact narrow fits
}

// TestAbsMinMax covers the trivial comparison helpers on both families.
func TestAbsMinMax(t *testing.T) {
	require.Equal(t, 4, scalar.Abs(-4))          // integer absolute value
	require.Equal(t, 4.5, scalar.Abs(-4.5))      // float absolute value
	require.Equal(t, 2, scalar.Min(2, 9))        // min picks the smaller
	require.Equal(t, 9, scalar.Max(2, 9))        // max picks the larger
	require.Equal(t, -1.5, scalar.Min(-1.5, 0.0)) // works for negatives
}

// TestSqrtPrecisionDispatch checks both precision paths of Sqrt.
func TestSqrtPrecisionDispatch(t *testing.T) {
	require.InDelta(t, 3.0, scalar.Sqrt(9.0), floatTol)               // float64 path
	require.InDelta(t, float32(3), scalar.Sqrt(float32(9)), float32Tol) // float32 path via math32
}

// TestTrigIdentities sanity-checks Sin/Cos/Atan2/Hypot against the stdlib.
func TestTrigIdentities(t *testing.T) {
	theta := 1.2345 // arbitrary non-special angle

	require.InDelta(t, math.Sin(theta), scalar.Sin(theta), floatTol)
	require.InDelta(t, math.Cos(theta), scalar.Cos(theta), floatTol)
	require.InDelta(t, math.Atan2(1, 1), scalar.Atan2(1.0, 1.0), floatTol) // π/4
	require.InDelta(t, 5.0, scalar.Hypot(3.0, 4.0), floatTol)              // 3-4-5 triangle

	// float32 variants stay in single precision but must agree within tolerance.
	require.InDelta(t, float32(math.Sin(float64(float32(theta)))), scalar.Sin(float32(theta)), float32Tol)
	require.InDelta(t, float32(5), scalar.Hypot(float32(3), float32(4)), float32Tol)
}

// TestDerivedFloatTypesFallBack ensures named float types use the float64
// path and still produce correct results.
func TestDerivedFloatTypesFallBack(t *testing.T) {
	type angle float32 // derived type: misses the float32 fast path on purpose

	require.InDelta(t, float64(angle(3)), float64(scalar.Sqrt(angle(9))), float32Tol)
}
