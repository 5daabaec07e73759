// SPDX-License-Identifier: MIT
// Package vec: non-mutating binary kernels.
//
// Purpose:
//   - Provide the binary-operator forms of the arithmetic surface: each
//     kernel allocates a fresh result and leaves both operands untouched.
//   - The right-hand operand may carry a DIFFERENT element type than the
//     left; its elements are converted into T with Go's standard numeric
//     conversion rules before the operation (widening or narrowing follows
//     the left operand's type).
//
// Determinism:
//   - Same-type float64/float32 pairs take the vek fast path; mixed-type
//     pairs always run the fixed conversion loop.

package vec

import (
	"math"

	"github.com/katalvlaran/vecmat/scalar"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// binop applies out[i] = op(a[i], T(b[i])) into a fresh clone of a.
// Shared validation/allocation for Add/Sub/Mul/Div. Complexity: O(n).
func binop[T, U scalar.Number](a *Vector[T], b *Vector[U], tag string, op func(x, y T) T) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := a.Clone()
	for i := range out.elems { // fixed 0..n-1 order
		out.elems[i] = op(out.elems[i], scalar.Cast[U, T](b.elems[i]))
	}

	return out, nil
}

// Add returns the element-wise sum a + b as a fresh vector typed like a.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Add[T, U scalar.Number](a *Vector[T], b *Vector[U]) (*Vector[T], error) {
	// Same-type fast path: hand the clone straight to vek.
	if err := validatePair(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if bs, ok := any(b.elems).([]T); ok {
		out := a.Clone()
		switch xs := any(out.elems).(type) {
		case []float64:
			vek.Add_Inplace(xs, any(bs).([]float64))

			return out, nil
		case []float32:
			vek32.Add_Inplace(xs, any(bs).([]float32))

			return out, nil
		}
		for i := range out.elems {
			out.elems[i] += bs[i]
		}

		return out, nil
	}

	return binop(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a − b as a fresh vector typed like a.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Sub[T, U scalar.Number](a *Vector[T], b *Vector[U]) (*Vector[T], error) {
	return binop(a, b, opSub, func(x, y T) T { return x - y })
}

// Mul returns the element-wise (Hadamard) product a ⊙ b as a fresh vector
// typed like a.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Mul[T, U scalar.Number](a *Vector[T], b *Vector[U]) (*Vector[T], error) {
	return binop(a, b, opMul, func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient a / b as a fresh vector typed like a.
// Zero divisors follow the receiver type's division semantics: IEEE
// propagation for floats, a runtime fault for integers (unguarded by design).
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Div[T, U scalar.Number](a *Vector[T], b *Vector[U]) (*Vector[T], error) {
	return binop(a, b, opDiv, func(x, y T) T { return x / y })
}

// AddScalar returns a fresh vector with s added to every element of v.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(n).
func AddScalar[T scalar.Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	out := v.Clone()
	_ = out.AddScalar(s) // receiver is non-nil, cannot fail

	return out, nil
}

// SubScalar returns a fresh vector with s subtracted from every element of v.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(n).
func SubScalar[T scalar.Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, opErrorf(opSub, err)
	}
	out := v.Clone()
	_ = out.SubScalar(s)

	return out, nil
}

// Scale returns a fresh vector with every element of v multiplied by s.
// Errors: ErrNilVector. Complexity: Time O(n), Space O(n).
func Scale[T scalar.Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, opErrorf(opMul, err)
	}
	out := v.Clone()
	_ = out.Scale(s)

	return out, nil
}

// DivScalar returns a fresh vector with every element of v divided by s.
// Zero s follows T's division semantics (see the method form).
// Errors: ErrNilVector. Complexity: Time O(n), Space O(n).
func DivScalar[T scalar.Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, opErrorf(opDiv, err)
	}
	out := v.Clone()
	_ = out.DivScalar(s)

	return out, nil
}

// Distance returns the Euclidean distance between a and b, accumulated in
// float64 regardless of the element types (avoids integer overflow and
// float32 precision loss in the squares).
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Distance[T, U scalar.Number](a *Vector[T], b *Vector[U]) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, opErrorf(opDist, err)
	}
	var sum float64
	for i := range a.elems { // fixed 0..n-1 order
		d := float64(a.elems[i]) - float64(b.elems[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Lerp returns the linear interpolation a + (b−a)·t as a fresh vector:
// t = 0 yields a, t = 1 yields b, intermediate values interpolate.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Lerp[F scalar.Float](a, b *Vector[F], t F) (*Vector[F], error) {
	if err := validatePair(a, b); err != nil {
		return nil, opErrorf(opLerp, err)
	}
	out := a.Clone()
	for i := range out.elems {
		out.elems[i] += (b.elems[i] - a.elems[i]) * t
	}

	return out, nil
}
