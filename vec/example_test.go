// Package vec_test: runnable examples for the vec package.
package vec_test

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vec"
)

// ExampleNew demonstrates construction and the magnitude metrics.
func ExampleNew() {
	v, _ := vec.New(3.0, 4.0)
	fmt.Println(v)
	fmt.Println(v.Mag2())
	fmt.Println(v.Mag())
	// Output:
	// [3, 4]
	// 25
	// 5
}

// ExampleNorm shows in-place normalization of a non-zero vector.
func ExampleNorm() {
	v, _ := vec.New(3.0, 4.0)
	_ = vec.Norm(v)
	x, _ := v.X()
	y, _ := v.Y()
	fmt.Printf("[%.1f, %.1f] |v| = %.1f\n", x, y, v.Mag())
	// Output:
	// [0.6, 0.8] |v| = 1.0
}

// ExampleVector_Dot demonstrates the typed dot product.
func ExampleVector_Dot() {
	a, _ := vec.New(1, 3, -5)
	b, _ := vec.New(4, -2, -1)
	d, _ := a.Dot(b)
	fmt.Println(d)
	// Output:
	// 3
}

// ExampleCast shows resize-casting: zero-fill on growth, truncation on shrink.
func ExampleCast() {
	v, _ := vec.New(1.7, 2.2)
	grown, _ := vec.Cast[float64, int](v, 4)
	fmt.Println(grown)
	// Output:
	// [1, 2, 0, 0]
}
