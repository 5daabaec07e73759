// Package mat_test provides benchmarks for the hot matrix kernels.
package mat_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/mat"
)

// benchSizes are the square dimensions to benchmark; the adjugate-route
// determinant is factorial, so it stops at the library's target sizes.
var benchSizes = []int{2, 3, 4, 8}

// sinks to defeat dead-code elimination.
var (
	sinkF float64
	sinkM *mat.Dense[float64]
)

// randMat builds a deterministic pseudo-random n×n float64 matrix.
func randMat(b *testing.B, n int, seed int64) *mat.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	elems := make([]float64, n*n)
	for i := range elems {
		elems[i] = rng.Float64()*2 - 1
	}
	m, err := mat.NewFromSlice(n, n, elems...)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMat(b, n, 1)
			y := randMat(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := x.Add(y); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = x
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMat(b, n, 3)
			y := randMat(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := mat.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 3, 4, 6} { // factorial growth, keep small
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMat(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
