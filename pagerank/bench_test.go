// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pagerank/pagerank"
)

func BenchmarkPageRank(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		A := ring(b, n)
		init, _ := pagerank.UniformRank(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := pagerank.PageRank(A, init, 100, 0.85, 1e-9); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDampedOperator(b *testing.B) {
	A := ring(b, 128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := pagerank.DampedOperator(A, 0.85); err != nil {
			b.Fatal(err)
		}
	}
}
