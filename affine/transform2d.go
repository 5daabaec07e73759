// SPDX-License-Identifier: MIT
// Package affine: planar (2D) transform builder.
//
// Purpose:
//   - Accumulate translation, rotation, scaling and shear into a single 3×3
//     homogeneous matrix through a chainable builder.
//
// Conventions:
//   - Column vectors: a point maps as p' = M · (x, y, 1)ᵀ.
//   - Every builder step LEFT-composes the accumulated matrix with the new
//     step: this = this · T. Chained calls therefore apply in invocation
//     order, each expressed in the local frame produced by the steps before
//     it.

package affine

import (
	"fmt"

	"github.com/katalvlaran/vecmat/mat"
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vec"
)

// Homogeneous matrix orders per transform family.
const (
	order2D = 3 // 3×3 for the plane
	order3D = 4 // 4×4 for space
)

// opMap tags every error surfaced by the Map methods (no magic strings).
const opMap = "Map"

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil. Time O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transform2D accumulates planar affine transforms into a 3×3 homogeneous
// matrix. The zero value is not usable; construct with NewTransform2D.
type Transform2D[F scalar.Float] struct {
	m *mat.Dense[F] // 3×3 homogeneous accumulator, never nil
}

// NewTransform2D returns the identity transform (maps every point to itself).
func NewTransform2D[F scalar.Float]() *Transform2D[F] {
	m, _ := mat.NewIdentity[F](order2D) // fixed positive order, cannot fail

	return &Transform2D[F]{m: m}
}

// compose folds step into the accumulator: this = this · step.
// Both operands are fixed 3×3, so the product cannot fail.
func (t *Transform2D[F]) compose(step *mat.Dense[F]) *Transform2D[F] {
	t.m, _ = mat.Mul(t.m, step)

	return t
}

// Translate appends a translation by (dx, dy). Chainable.
func (t *Transform2D[F]) Translate(dx, dy F) *Transform2D[F] {
	step, _ := mat.NewIdentity[F](order2D)
	_ = step.Set(0, 2, dx)
	_ = step.Set(1, 2, dy)

	return t.compose(step)
}

// Rotate appends a counter-clockwise rotation by theta radians about the
// origin of the current local frame. Chainable.
func (t *Transform2D[F]) Rotate(theta F) *Transform2D[F] {
	s, c := scalar.Sin(theta), scalar.Cos(theta)
	step, _ := mat.NewIdentity[F](order2D)
	_ = step.Set(0, 0, c)
	_ = step.Set(0, 1, -s)
	_ = step.Set(1, 0, s)
	_ = step.Set(1, 1, c)

	return t.compose(step)
}

// Scale appends an axis-aligned scale by (sx, sy). Chainable.
func (t *Transform2D[F]) Scale(sx, sy F) *Transform2D[F] {
	step, _ := mat.NewIdentity[F](order2D)
	_ = step.Set(0, 0, sx)
	_ = step.Set(1, 1, sy)

	return t.compose(step)
}

// ScaleUniform appends a uniform scale by s on both axes. Chainable.
func (t *Transform2D[F]) ScaleUniform(s F) *Transform2D[F] {
	return t.Scale(s, s)
}

// Shear appends a shear: x' = x + sx·y, y' = y + sy·x. Chainable.
func (t *Transform2D[F]) Shear(sx, sy F) *Transform2D[F] {
	step, _ := mat.NewIdentity[F](order2D)
	_ = step.Set(0, 1, sx)
	_ = step.Set(1, 0, sy)

	return t.compose(step)
}

// Map applies the accumulated transform to a 2D point: the input is promoted
// to homogeneous coordinates (x, y, 1), multiplied and the first two
// components returned as a fresh vector. The input is never mutated.
//
// Errors: vec.ErrNilVector, mat.ErrDimensionMismatch unless Dim(v) == 2.
// Complexity: O(1) for the fixed 3×3 product.
func (t *Transform2D[F]) Map(v *vec.Vector[F]) (*vec.Vector[F], error) {
	return mapHomogeneous(t.m, v, order2D-1)
}

// Matrix returns a deep copy of the accumulated 3×3 homogeneous matrix;
// mutating it never affects the transform.
func (t *Transform2D[F]) Matrix() *mat.Dense[F] {
	return t.m.Clone()
}

// mapHomogeneous promotes v (which must have exactly dim components) with a
// trailing 1, multiplies by m and strips the homogeneous slot again.
// Shared by both transform orders.
func mapHomogeneous[F scalar.Float](m *mat.Dense[F], v *vec.Vector[F], dim int) (*vec.Vector[F], error) {
	if v == nil {
		return nil, opErrorf(opMap, vec.ErrNilVector)
	}
	if v.Dim() != dim {
		return nil, opErrorf(opMap, mat.ErrDimensionMismatch)
	}
	promoted := make([]F, dim+1)
	for i := 0; i < dim; i++ {
		promoted[i], _ = v.At(i) // bounds pre-validated against Dim
	}
	promoted[dim] = 1
	hv, err := vec.New(promoted...)
	if err != nil {
		return nil, opErrorf(opMap, err)
	}
	mapped, err := mat.MulVec(m, hv)
	if err != nil {
		return nil, opErrorf(opMap, err)
	}
	out := make([]F, dim)
	for i := 0; i < dim; i++ {
		out[i], _ = mapped.At(i)
	}

	return vec.New(out...)
}
