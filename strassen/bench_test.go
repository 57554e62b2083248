// Package strassen_test benchmarks Naive against both Strassen variants on
// square float64 inputs filled with a fixed seed.
package strassen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

var benchSizes = []int{128, 256, 512}

// sink defeats dead-code elimination.
var sink *matrix.Dense[float64]

func benchOperand(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() })

	return m
}

func BenchmarkNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchOperand(b, n, 1), benchOperand(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := strassen.Naive(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sink = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, v := range []strassen.Variant{strassen.Parallel, strassen.Sequential} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%v/n=%d", v, n), func(b *testing.B) {
				x, y := benchOperand(b, n, 1), benchOperand(b, n, 2)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := strassen.Multiply(x, y, strassen.WithVariant(v))
					if err != nil {
						b.Fatal(err)
					}
					sink = m
				}
			})
		}
	}
}
