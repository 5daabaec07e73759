// SPDX-License-Identifier: MIT
// Package vec: floating-point-only operations.
//
// These live as package-level generic functions (constrained by scalar.Float)
// rather than methods, because Go methods cannot narrow the receiver's type
// parameter: constraining here is what keeps integer vectors away from
// normalization, polar conversion and cross products at compile time.
//
// Numeric policy:
//   - Norm does NOT guard the zero vector: dividing by a zero magnitude
//     propagates IEEE ±Inf/NaN by design. Callers
//     that need a guard should test Mag2() != 0 first.

package vec

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Dimension gates for the shape-restricted operations.
const (
	dimPlanar  = 2 // ToPolar / ToCartesian operate on 2-element vectors
	dimSpatial = 3 // Cross operates on 3-element vectors
)

// Norm rescales v to unit magnitude in place: every element is divided by
// Mag(). A zero-magnitude input produces ±Inf/NaN slots (unguarded, by
// design); any non-zero input yields Mag() ≈ 1 within float tolerance.
//
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(1).
func Norm[F scalar.Float](v *Vector[F]) error {
	if err := validateNotNil(v); err != nil {
		return opErrorf(opNorm, err)
	}
	m := F(v.Mag()) // magnitude computed in float64, rounded into F
	switch xs := any(v.elems).(type) {
	case []float64:
		vek.DivNumber_Inplace(xs, float64(m))
	case []float32:
		vek32.DivNumber_Inplace(xs, float32(m))
	default:
		for i := range v.elems {
			v.elems[i] /= m
		}
	}

	return nil
}

// Cross overwrites v with the standard 3D cross product v × w.
// Both operands must be 3-element vectors; w is never modified.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(1) (fixed 3 components), Space O(1).
func Cross[F scalar.Float](v, w *Vector[F]) error {
	if err := validateDim(v, dimSpatial); err != nil {
		return opErrorf(opCross, err)
	}
	if err := validateDim(w, dimSpatial); err != nil {
		return opErrorf(opCross, err)
	}
	// Compute all three components before writing: v aliases the output.
	cx := v.elems[1]*w.elems[2] - v.elems[2]*w.elems[1]
	cy := v.elems[2]*w.elems[0] - v.elems[0]*w.elems[2]
	cz := v.elems[0]*w.elems[1] - v.elems[1]*w.elems[0]
	v.elems[0], v.elems[1], v.elems[2] = cx, cy, cz

	return nil
}

// ToPolar reinterprets a 2-element vector as Cartesian (x, y) and rewrites
// it in place to polar form (radius, angle): radius = Mag(), angle =
// atan2(y, x) normalized into [0, 2π). ToCartesian is its near-inverse
// (modulo the angle normalization and float rounding).
//
// Errors: ErrNilVector, ErrDimensionMismatch (dimension ≠ 2).
// Complexity: Time O(1), Space O(1).
func ToPolar[F scalar.Float](v *Vector[F]) error {
	if err := validateDim(v, dimPlanar); err != nil {
		return opErrorf(opPol, err)
	}
	x, y := v.elems[0], v.elems[1]
	radius := F(v.Mag())
	angle := scalar.Atan2(y, x) // (−π, π]
	if angle < 0 {
		angle += scalar.TwoPi // shift into the canonical [0, 2π) interval
	}
	v.elems[0], v.elems[1] = radius, angle

	return nil
}

// ToCartesian reinterprets a 2-element vector as polar (radius, angle) and
// rewrites it in place to Cartesian form (radius·cos(angle), radius·sin(angle)).
//
// Errors: ErrNilVector, ErrDimensionMismatch (dimension ≠ 2).
// Complexity: Time O(1), Space O(1).
func ToCartesian[F scalar.Float](v *Vector[F]) error {
	if err := validateDim(v, dimPlanar); err != nil {
		return opErrorf(opCart, err)
	}
	radius, angle := v.elems[0], v.elems[1]
	v.elems[0] = radius * scalar.Cos(angle)
	v.elems[1] = radius * scalar.Sin(angle)

	return nil
}
