// Package scalar defines the numeric substrate shared by every vecmat
// package: generic constraints for element types and a handful of scalar
// helpers that work uniformly across them.
//
// 🚀 What does scalar provide?
//
//   - Number — the element constraint (any integer or float type) used by
//     vec.Vector[T] and mat.Dense[T]
//   - Float — the floating-point subset required by normalization, polar
//     conversion, cross products and the affine builders
//   - Cast — explicit numeric conversion between any two Number types
//   - Sqrt/Sin/Cos/Atan2/Hypot — generic float transcendentals that stay in
//     float32 precision for float32 (via chewxy/math32) instead of
//     round-tripping through float64
//   - Abs/Min/Max — trivial generic comparisons
//
// ⚙️ Precision policy:
//
//	For plain float32 arguments the trig/sqrt helpers dispatch to
//	github.com/chewxy/math32; every other Float type is computed through
//	the stdlib math package in float64 and converted back. Results are
//	deterministic for a given input on a given platform.
package scalar
