// Package matrix_test provides benchmarks for the row kernels and the
// products used to verify inverses, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/luciusluo/matrix-inverse/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddScaledRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, 2*n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// alternate sign so values stay bounded
				alpha := 0.5
				if i%2 == 1 {
					alpha = -0.5
				}
				if err := A.AddScaledRow(1, 0, alpha, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCopyBlock(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := RandFilledDense(b, n, n, 3)
			dst := mustZeros(b, n, 2*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.CopyBlock(dst, src, n, n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMaxAbsDiff(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 5)
			B := RandFilledDense(b, n, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.MaxAbsDiff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
