// SPDX-License-Identifier: MIT
// Package affine: spatial (3D) transform builder.
//
// Conventions:
//   - Column vectors: a point maps as p' = M · (x, y, z, 1)ᵀ.
//   - Rotations follow the right-hand rule about each axis.
//   - Builder steps LEFT-compose exactly as in the planar case.

package affine

import (
	"github.com/katalvlaran/vecmat/mat"
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vec"
)

// Transform3D accumulates spatial affine transforms into a 4×4 homogeneous
// matrix. The zero value is not usable; construct with NewTransform3D.
type Transform3D[F scalar.Float] struct {
	m *mat.Dense[F] // 4×4 homogeneous accumulator, never nil
}

// NewTransform3D returns the identity transform (maps every point to itself).
func NewTransform3D[F scalar.Float]() *Transform3D[F] {
	m, _ := mat.NewIdentity[F](order3D) // fixed positive order, cannot fail

	return &Transform3D[F]{m: m}
}

// compose folds step into the accumulator: this = this · step.
func (t *Transform3D[F]) compose(step *mat.Dense[F]) *Transform3D[F] {
	t.m, _ = mat.Mul(t.m, step) // fixed 4×4 shapes, cannot fail

	return t
}

// Translate appends a translation by (dx, dy, dz). Chainable.
func (t *Transform3D[F]) Translate(dx, dy, dz F) *Transform3D[F] {
	step, _ := mat.NewIdentity[F](order3D)
	_ = step.Set(0, 3, dx)
	_ = step.Set(1, 3, dy)
	_ = step.Set(2, 3, dz)

	return t.compose(step)
}

// Scale appends an axis-aligned scale by (sx, sy, sz). Chainable.
func (t *Transform3D[F]) Scale(sx, sy, sz F) *Transform3D[F] {
	step, _ := mat.NewIdentity[F](order3D)
	_ = step.Set(0, 0, sx)
	_ = step.Set(1, 1, sy)
	_ = step.Set(2, 2, sz)

	return t.compose(step)
}

// ScaleUniform appends a uniform scale by s on all three axes. Chainable.
func (t *Transform3D[F]) ScaleUniform(s F) *Transform3D[F] {
	return t.Scale(s, s, s)
}

// RotateX appends a right-hand rotation by theta radians about the x axis.
// Chainable.
func (t *Transform3D[F]) RotateX(theta F) *Transform3D[F] {
	s, c := scalar.Sin(theta), scalar.Cos(theta)
	step, _ := mat.NewIdentity[F](order3D)
	_ = step.Set(1, 1, c)
	_ = step.Set(1, 2, -s)
	_ = step.Set(2, 1, s)
	_ = step.Set(2, 2, c)

	return t.compose(step)
}

// RotateY appends a right-hand rotation by theta radians about the y axis.
// Chainable.
func (t *Transform3D[F]) RotateY(theta F) *Transform3D[F] {
	s, c := scalar.Sin(theta), scalar.Cos(theta)
	step, _ := mat.NewIdentity[F](order3D)
	_ = step.Set(0, 0, c)
	_ = step.Set(0, 2, s)
	_ = step.Set(2, 0, -s)
	_ = step.Set(2, 2, c)

	return t.compose(step)
}

// RotateZ appends a right-hand rotation by theta radians about the z axis.
// Chainable.
func (t *Transform3D[F]) RotateZ(theta F) *Transform3D[F] {
	s, c := scalar.Sin(theta), scalar.Cos(theta)
	step, _ := mat.NewIdentity[F](order3D)
	_ = step.Set(0, 0, c)
	_ = step.Set(0, 1, -s)
	_ = step.Set(1, 0, s)
	_ = step.Set(1, 1, c)

	return t.compose(step)
}

// Rotate appends the composite rotation RotateX(x) then RotateY(y) then
// RotateZ(z), in that fixed order. Axis rotations do not commute, so callers
// needing a different order chain the single-axis builders directly.
// Chainable.
func (t *Transform3D[F]) Rotate(x, y, z F) *Transform3D[F] {
	return t.RotateX(x).RotateY(y).RotateZ(z)
}

// Map applies the accumulated transform to a 3D point via homogeneous
// promotion (x, y, z, 1). The input is never mutated.
//
// Errors: vec.ErrNilVector, mat.ErrDimensionMismatch unless Dim(v) == 3.
// Complexity: O(1) for the fixed 4×4 product.
func (t *Transform3D[F]) Map(v *vec.Vector[F]) (*vec.Vector[F], error) {
	return mapHomogeneous(t.m, v, order3D-1)
}

// Matrix returns a deep copy of the accumulated 4×4 homogeneous matrix.
func (t *Transform3D[F]) Matrix() *mat.Dense[F] {
	return t.m.Clone()
}
