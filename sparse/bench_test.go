// SPDX-License-Identifier: MIT

// Package sparse_test provides benchmarks for the CSR kernels, using
// deterministic random triples.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/primepath/sparse"
)

// benchSizes are the matrix orders to benchmark (≈4 edges per node).
var benchSizes = []int{1_000, 10_000}

// sink defeats dead-code elimination.
var sinkM *sparse.CSR[int64]

func BenchmarkFromTriples(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		ts := randomTriples(1337, n, 4*n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := sparse.FromTriples(n, ts, ar)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		a := mustBuild(b, n, randomTriples(4242, n, 4*n)...)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := sparse.Multiply(a, a, ar)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
