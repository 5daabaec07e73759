// Package mat implements the fixed-shape generic dense matrix of vecmat:
// row-major storage, element-wise and product algebra, elementary row
// operations, submatrix extraction and the classical adjugate-based
// determinant/inverse path for small dimensions.
//
// 🚀 What does mat provide?
//
//   - Dense[T] — an r×c row-major matrix over any Number type, shape fixed
//     at construction
//   - Construction: zeros (NewDense/NewZeros), row-major list (NewFromSlice),
//     nested rows (NewFromRows), broadcast (NewFilled), identity
//     (NewIdentity), deep copy (Clone)
//   - Cell access (At/Set) and vector bridging: Row/Col extract independent
//     *vec.Vector copies, SetRow/SetCol scatter them back
//   - Element-wise algebra: mutating Add/Sub/Scale/DivScalar methods plus
//     non-mutating Add/Sub/Hadamard/Scale kernels
//   - Products: Mul (row-by-column, zero-skip), MulVec (column-vector
//     convention), Transpose and the square-only TransposeInPlace
//   - Elementary row ops: SwapRows, ScaleRow, RowAdd (NOTE: RowAdd REPLACES
//     the destination row with factor·src, see its doc)
//   - SubMatrix: delete listed rows/columns, survivors keep their order
//   - Square algebra: Det (Laplace expansion), Invertible, Cofactor,
//     Adjugate, Inverse = adj/det
//
// ⚙️ Usage:
//
//	m, _ := mat.NewFromSlice(2, 2, 4.0, 7.0, 2.0, 6.0)
//	inv, _ := m.Inverse()    // | 0.6, -0.7 | / | -0.2, 0.4 |
//	d, _ := m.Det()          // 10
//
// Error policy: every user-triggerable failure is a package sentinel
// (ErrNilMatrix, ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrEmptySubMatrix, ErrSingular) matched via errors.Is.
// The one guarded degeneracy is inversion of an exactly singular matrix;
// scalar division by zero follows the element type's native semantics.
//
// Performance: plain float64/float32 storage routes the element-wise
// methods through github.com/viterin/vek; the determinant path is the
// O(N!) recursive expansion, intended for the 2×2..4×4 sizes this library
// targets.
package mat
