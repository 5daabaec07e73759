// SPDX-License-Identifier: MIT
// Package vec provides the fixed-length generic vector value type that the
// rest of vecmat is built on. A Vector owns a flat backing slice whose
// length is fixed at construction time (Go offers no compile-time array-size
// parameters, so the dimension is a runtime invariant enforced by the API).

package vec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/scalar"
)

// Conventional slot positions exposed through the named accessors.
const (
	slotX = 0 // first component
	slotY = 1 // second component
	slotZ = 2 // third component
	slotW = 3 // fourth component
)

// Vector is an ordered, fixed-length sequence of Number elements.
// The dimension never changes after construction; every operation either
// preserves it or returns a freshly allocated vector. Instances never share
// storage: assignment of the struct shares the slice, so use Clone for an
// independent copy.
type Vector[T scalar.Number] struct {
	elems []T // flat backing storage, len == dimension, never resized
}

// New builds a vector from an explicit element list; the dimension is the
// number of arguments. The elements are copied, so the caller's slice (when
// expanded with ...) is never aliased.
//
// Errors:
//   - ErrBadDimension when no elements are supplied.
//
// Complexity: O(n) copy.
func New[T scalar.Number](elems ...T) (*Vector[T], error) {
	// Validate the requested dimension.
	if len(elems) == 0 {
		return nil, ErrBadDimension
	}
	// Copy into fresh storage to guarantee value independence.
	data := make([]T, len(elems))
	copy(data, elems)

	return &Vector[T]{elems: data}, nil
}

// Zero returns the all-zero vector of dimension n (the "empty" factory:
// every slot holds T's zero value, so Mag2() == 0).
//
// Errors: ErrBadDimension when n <= 0. Complexity: O(n) zeroing.
func Zero[T scalar.Number](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	return &Vector[T]{elems: make([]T, n)}, nil
}

// NewFilled returns a vector of dimension n with every slot set to v
// (single-value broadcast construction).
//
// Errors: ErrBadDimension when n <= 0. Complexity: O(n) fill.
func NewFilled[T scalar.Number](n int, v T) (*Vector[T], error) {
	out, err := Zero[T](n)
	if err != nil {
		return nil, err
	}
	for i := range out.elems { // deterministic fill
		out.elems[i] = v
	}

	return out, nil
}

// Clone returns a deep copy; mutating the copy never affects the receiver.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.elems))
	copy(data, v.elems)

	return &Vector[T]{elems: data}
}

// Dim returns the fixed dimension of the vector. Complexity: O(1).
func (v *Vector[T]) Dim() int {
	return len(v.elems)
}

// At retrieves the element at index i.
// Errors: ErrOutOfRange unless 0 ≤ i < Dim(). Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(v, i); err != nil {
		var zero T

		return zero, err
	}

	return v.elems[i], nil
}

// Set assigns value x at index i.
// Errors: ErrOutOfRange unless 0 ≤ i < Dim(). Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(v, i); err != nil {
		return err
	}
	v.elems[i] = x

	return nil
}

// X returns the first component. Capability-checked: a vector always has an
// X slot (dimension ≥ 1 by construction), so this only fails on a
// zero-value Vector that bypassed the constructors.
func (v *Vector[T]) X() (T, error) { return v.At(slotX) }

// Y returns the second component; ErrOutOfRange when Dim() < 2.
func (v *Vector[T]) Y() (T, error) { return v.At(slotY) }

// Z returns the third component; ErrOutOfRange when Dim() < 3.
func (v *Vector[T]) Z() (T, error) { return v.At(slotZ) }

// W returns the fourth component; ErrOutOfRange when Dim() < 4.
func (v *Vector[T]) W() (T, error) { return v.At(slotW) }

// SetX assigns the first component; same capability rules as X.
func (v *Vector[T]) SetX(x T) error { return v.Set(slotX, x) }

// SetY assigns the second component; ErrOutOfRange when Dim() < 2.
func (v *Vector[T]) SetY(x T) error { return v.Set(slotY, x) }

// SetZ assigns the third component; ErrOutOfRange when Dim() < 3.
func (v *Vector[T]) SetZ(x T) error { return v.Set(slotZ, x) }

// SetW assigns the fourth component; ErrOutOfRange when Dim() < 4.
func (v *Vector[T]) SetW(x T) error { return v.Set(slotW, x) }

// String implements fmt.Stringer: "[e0, e1, ..., eN-1]".
// Complexity: O(n) string construction.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.elems { // fixed order for stable output
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')

	return sb.String()
}
