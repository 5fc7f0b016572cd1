// SPDX-License-Identifier: MIT

// Package pagerank computes the PageRank vector of a directed graph given as a
// dense adjacency matrix, by damped power iteration.
//
// 🚀 What is PageRank?
//
//	A random surfer follows an outgoing link with probability q (the damping
//	factor, conventionally 0.85) and teleports to a uniformly random node with
//	probability 1-q. The PageRank vector is the stationary distribution of
//	that walk.
//
// ✨ Algorithm:
//
//  1. outDegree[i] = Σ_j A[i,j]; D = diag(1/outDegree).
//  2. T = (D × A)ᵀ, so column j of T spreads node j's rank over its successors.
//  3. M = q·T + E, where every entry of E is (1-q)/n.
//  4. rank₀ = initial; rank_{k+1} = M × rank_k, stopping as soon as
//     Σ|rank_{k+1} − rank_k| < epsilon or after maxIterations products.
//
// Dangling nodes (rows with zero out-degree) follow a DanglingPolicy:
//   - DanglingUniform (default): the row links to every node with weight 1/n.
//   - DanglingPropagate: 1/0 = +Inf is kept and poisons the ranks with NaN,
//     as plain IEEE-754 arithmetic does.
//   - DanglingReject: PageRank fails with ErrDanglingNode.
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{
//		{0, 1, 0, 1},
//		{1, 0, 1, 0},
//		{0, 1, 0, 0},
//		{0, 0, 1, 0},
//	})
//	res, err := pagerank.PageRank(A, []float64{0.2, 0.4, 0.2, 0.2}, 1000, 0.85, 0.001)
//
// For foreign callers holding flat row-major buffers, see RankFlat.
//
// Performance:
//
//   - Build: O(n²) for D×A on *matrix.Dense (zeros of D are skipped), O(n³)
//     through the generic Matrix path.
//   - Iterate: O(n²) per product, O(n) extra memory for two rank buffers.
package pagerank
