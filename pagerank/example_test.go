// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/pagerank"
)

// ExamplePageRank ranks a 4-node graph:
//
//	0 → 1, 3
//	1 → 0, 2
//	2 → 1
//	3 → 2
//
// Node 1 collects links from 0 and 2, so it ends up on top.
func ExamplePageRank() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	})
	res, err := pagerank.PageRank(A, []float64{0.2, 0.4, 0.2, 0.2},
		pagerank.DefaultMaxIterations, pagerank.DefaultDamping, pagerank.DefaultEpsilon)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v iterations=%d\n", res.Converged, res.Iterations)
	for i, r := range res.Rank {
		fmt.Printf("node %d: %.4f\n", i, r)
	}
	// Output:
	// converged=true iterations=38
	// node 0: 0.1982
	// node 1: 0.3784
	// node 2: 0.3016
	// node 3: 0.1218
}

// ExamplePageRank_dangling shows the default treatment of a node without
// outgoing links: it behaves as if it linked to every node.
func ExamplePageRank_dangling() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{0, 0},
	})
	init, _ := pagerank.UniformRank(2)
	res, _ := pagerank.PageRank(A, init, 1000, 0.85, 1e-6)
	fmt.Printf("dangling=%v rank=[%.4f %.4f]\n", res.Dangling, res.Rank[0], res.Rank[1])

	_, err := pagerank.PageRank(A, init, 1000, 0.85, 1e-6,
		pagerank.WithDanglingPolicy(pagerank.DanglingReject))
	fmt.Println(errors.Is(err, pagerank.ErrDanglingNode))
	// Output:
	// dangling=[1] rank=[0.3509 0.6491]
	// true
}

// ExampleRankFlat feeds row-major buffers, as a foreign caller would.
func ExampleRankFlat() {
	adj := []float64{
		0, 1, 1,
		1, 0, 0,
		0, 1, 0,
	}
	out := make([]float64, 3)
	res, err := pagerank.RankFlat(adj, 3, []float64{1, 0, 0}, 0, 0.85, 1e-3, out)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out, res.Iterations)
	// Output:
	// [1 0 0] 0
}
