// Package vec implements the fixed-length generic vector value type of
// vecmat, with element-wise arithmetic, magnitude metrics and the 2D/3D
// floating-point geometry operations layered on top.
//
// 🚀 What does vec provide?
//
//   - Vector[T] — an ordered, fixed-dimension tuple over any Number type
//   - Construction: explicit list (New), zero factory (Zero), broadcast
//     (NewFilled), deep copy (Clone)
//   - Indexed access (At/Set) plus the conventional x/y/z/w named accessors,
//     capability-checked against the dimension
//   - In-place arithmetic methods (Add/Sub/Mul/Div + scalar forms) and
//     non-mutating binary kernels that accept a different element type on
//     the right-hand side
//   - Metrics: Mag2/Mag (always float64), Dot (typed T), magnitude-ordered
//     Compare and element-wise Equal
//   - Float-only: Norm, Cross (3D), ToPolar/ToCartesian (2D)
//   - Cast: resize + element-type conversion in one step
//
// ⚙️ Usage:
//
//	v, _ := vec.New(3.0, 4.0)
//	_ = vec.Norm(v)          // v ≈ [0.6, 0.8]
//	fmt.Println(v.Mag())     // ≈ 1
//
// Error policy: every user-triggerable failure is a package sentinel
// (ErrNilVector, ErrBadDimension, ErrOutOfRange, ErrDimensionMismatch)
// matched via errors.Is. Arithmetic degeneracies — zero-magnitude Norm,
// zero divisors — are deliberately NOT guarded and follow the element
// type's native semantics (IEEE propagation for floats, runtime fault for
// integers).
//
// Performance: plain float64/float32 vectors route element-wise kernels
// through github.com/viterin/vek (SIMD where the platform provides it);
// all other element types use deterministic scalar loops.
package vec
