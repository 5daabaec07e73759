// SPDX-License-Identifier: MIT
// Package scalar: generic float transcendentals with a float32 fast path.
//
// Purpose:
//   - Give vec/affine one precision-aware entry point per function instead of
//     ad hoc math.XXX(float64(v)) conversions scattered across kernels.
//   - Plain float32 dispatches to chewxy/math32; every other Float type is
//     evaluated in float64 via the stdlib and converted back.
//
// Determinism & Performance:
//   - All helpers are pure, allocation-free and deterministic per platform.
//   - The type switch on any(x) costs a single interface check; derived
//     float32 types (e.g. `type angle float32`) take the float64 path, which
//     is still correct, only marginally slower.

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Pi is the circle constant typed as untyped constant for use with any Float.
const Pi = math.Pi

// TwoPi is the full turn in radians; used to normalize polar angles into
// the canonical [0, 2π) interval.
const TwoPi = 2 * math.Pi

// Sqrt returns √x in the precision of F.
func Sqrt[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sqrt(v))
	}

	return F(math.Sqrt(float64(x)))
}

// Sin returns sin(x) for x in radians, in the precision of F.
func Sin[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sin(v))
	}

	return F(math.Sin(float64(x)))
}

// Cos returns cos(x) for x in radians, in the precision of F.
func Cos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Cos(v))
	}

	return F(math.Cos(float64(x)))
}

// Atan2 returns the angle of the point (x, y) in radians within (−π, π],
// in the precision of F.
func Atan2[F Float](y, x F) F {
	if vy, ok := any(y).(float32); ok {
		// x has the same type argument as y, so the assertion cannot fail.
		vx, _ := any(x).(float32)

		return F(math32.Atan2(vy, vx))
	}

	return F(math.Atan2(float64(y), float64(x)))
}

// Hypot returns √(x² + y²) without intermediate overflow/underflow,
// in the precision of F.
func Hypot[F Float](x, y F) F {
	if vx, ok := any(x).(float32); ok {
		vy, _ := any(y).(float32)

		return F(math32.Hypot(vx, vy))
	}

	return F(math.Hypot(float64(x), float64(y)))
}
