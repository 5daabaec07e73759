// Package affine implements chainable builders for 2D and 3D affine
// transforms on top of the mat and vec packages.
//
// 🚀 What does affine provide?
//
//   - Transform2D[F] — a 3×3 homogeneous accumulator with Translate, Rotate
//     (counter-clockwise), Scale, ScaleUniform and Shear steps
//   - Transform3D[F] — a 4×4 accumulator with Translate, Scale,
//     ScaleUniform, per-axis RotateX/RotateY/RotateZ (right-hand rule) and
//     the fixed-order composite Rotate(x, y, z)
//   - Map — applies the accumulated transform to a point by homogeneous
//     promotion ((x, y, 1) or (x, y, z, 1)), returning a fresh vector
//   - Matrix — a deep copy of the accumulated homogeneous matrix
//
// ⚙️ Usage:
//
//	p, _ := vec.New(0.0, 0.0)
//	moved, _ := affine.NewTransform2D[float64]().
//	        Translate(42, 64).
//	        Map(p)                   // → [42, 64]
//
// Conventions: column vectors (p' = M·p) and LEFT-composition — every
// builder step computes this = this · T, so chained steps apply in
// invocation order, each in the local frame established by the preceding
// steps. Translate(10, 0) followed by Rotate(π/2) rotates about the
// translated origin, not the world origin.
//
// Element types are constrained to floats: rotation requires transcendental
// functions and integer grids rarely survive them meaningfully.
package affine
