// Package pagerank is a small numeric toolkit for ranking the nodes of a
// directed graph given as a dense adjacency matrix.
//
// 🚀 What is inside?
//
//   - matrix/: row-major Dense, sentinel errors, validators, kernels
//     (Mul, Transpose, Scale, Add, MatVec, L1Distance)
//   - pagerank/: damped power iteration with an L1 stopping rule,
//     dangling-node policies and a flat-buffer entry point
//   - cmd/pagerank: solve one JSON job from the command line
//   - cmd/libpagerank: the same solver exported to C (pagerank_c)
//
// ✨ Guarantees
//
//   - Deterministic – fixed loop orders, no goroutines, bit-identical reruns
//   - Fail-fast – every shape, parameter and entry is checked before work starts
//   - Caller-owned inputs – adjacency and starting rank are never written to
//
// Quick example graph (row i lists the targets of node i):
//
//	0 → 1, 3
//	1 → 0, 2
//	2 → 1
//	3 → 2
//
// Node 1 receives two links (from 0 and 2) and ends up with the highest rank.
//
//	go get github.com/katalvlaran/pagerank/pagerank
package pagerank
