// Package matrix_test provides benchmarks for the core kernels, serial and
// pooled, using deterministic seeded fills.
package matrix_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustSeeded(b, n, n, 1337, matrix.RowMajor)
			B := mustSeeded(b, n, n, 4242, matrix.RowMajor)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkAddMixedLayout measures the logical-index fallback path.
func BenchmarkAddMixedLayout(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustSeeded(b, n, n, 11, matrix.RowMajor)
			B := mustSeeded(b, n, n, 22, matrix.ColumnMajor)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulSerial(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustSeeded(b, n, n, 3, matrix.RowMajor)
			B := mustSeeded(b, n, n, 4, matrix.RowMajor)
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

func BenchmarkMulPooled(b *testing.B) {
	b.ReportAllocs()
	p := mustPool(b, runtime.GOMAXPROCS(0))
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustSeeded(b, n, n, 3, matrix.RowMajor)
			B := mustSeeded(b, n, n, 4, matrix.RowMajor)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B, matrix.WithPool(p), matrix.WithMinOpsPerThread(256))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkNewUniformPooled(b *testing.B) {
	b.ReportAllocs()
	p := mustPool(b, runtime.GOMAXPROCS(0))
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.NewUniform(n, n, -1.0, 1.0, matrix.WithPool(p), matrix.WithMinOpsPerThread(1024))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustSeeded(b, n, n, 5, matrix.RowMajor)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(A, B)
			}
		})
	}
}
