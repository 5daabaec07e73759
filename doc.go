// Package vecmat is a small-dimension linear-algebra toolkit: fixed-size
// vectors and matrices, generic over the numeric element type, with the
// classic 2D/3D/4D operations used by graphics, physics and geometry code.
//
// 🚀 What is vecmat?
//
//	A compact, dependency-light library that brings together:
//		• Vector primitives: element-wise arithmetic, magnitude, dot & cross
//		  products, polar ↔ cartesian conversion, resize/convert casting
//		• Dense matrices: row-major storage, element-wise ops, transpose,
//		  matrix & matrix-vector multiplication, elementary row operations
//		• Square-matrix algebra: recursive determinant (Laplace expansion),
//		  cofactor, adjugate and inverse
//		• Affine builders: chainable translate / rotate / scale / shear
//		  transforms over homogeneous 3×3 and 4×4 matrices
//
// ✨ Why choose vecmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors everywhere, no panics on user input
//   - Generic – one implementation for every integer and float element type
//   - Fast where it matters – SIMD-backed fast paths (viterin/vek) for
//     float32/float64 backing storage, plain deterministic loops otherwise
//
// Everything is organized under four subpackages:
//
//	scalar/ — numeric constraints (Number, Float) & generic scalar helpers
//	vec/    — Vector[T]: construction, arithmetic, metrics, float-only ops
//	mat/    — Dense[T]: storage, algebra, submatrices, determinant/inverse
//	affine/ — Transform2D[F] / Transform3D[F] chainable affine builders
//
// Quick example:
//
//	t := affine.NewTransform2D[float64]().Translate(42, 64)
//	p, _ := vec.New(0.0, 0.0)
//	out, _ := t.Map(p) // → [42, 64]
//
// All values are independent: cloning is deep, nothing is shared, and every
// operation is a deterministic, synchronous computation. Concurrent use is
// safe as long as each goroutine owns its own instances.
package vecmat
