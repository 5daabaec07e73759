// Package affine_test: runnable examples for the transform builders.
package affine_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/affine"
	"github.com/katalvlaran/vecmat/vec"
)

// ExampleTransform2D_Translate shows the simplest pipeline: shift a point.
func ExampleTransform2D_Translate() {
	p, _ := vec.New(0.0, 0.0)
	moved, _ := affine.NewTransform2D[float64]().
		Translate(42, 64).
		Map(p)
	fmt.Println(moved)
	// Output:
	// [42, 64]
}

// ExampleTransform2D_Rotate chains translation and rotation; the rotation
// acts in the translated local frame.
func ExampleTransform2D_Rotate() {
	p, _ := vec.New(1.0, 0.0)
	out, _ := affine.NewTransform2D[float64]().
		Translate(10, 0).
		Rotate(math.Pi / 2).
		Map(p)
	x, _ := out.X()
	y, _ := out.Y()
	fmt.Printf("(%.0f, %.0f)\n", x, y)
	// Output:
	// (10, 1)
}
