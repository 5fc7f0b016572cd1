// SPDX-License-Identifier: MIT

package pagerank

import (
	"github.com/katalvlaran/pagerank/matrix"
)

// PageRank runs damped power iteration on a dense adjacency matrix.
//
// Inputs:
//   - adjacency    : n×n, non-negative; A[i,j] > 0 when i links to j. Never mutated.
//   - initial      : starting rank, len n. Never mutated.
//   - maxIterations: cap on matrix-vector products (≥ 0).
//   - q            : damping factor in [0,1].
//   - epsilon      : L1 threshold (≥ 0); the run stops as soon as a step
//     moves the vector by less than epsilon.
//
// Algorithm:
//  1. Validate shape, parameters, entries (in that order).
//  2. Build M = q·(D × A)ᵀ + (1-q)/n once.
//  3. cur = copy(initial); repeat up to maxIterations times:
//     next = M × cur; delta = Σ|next − cur|; swap; stop if delta < epsilon.
//
// Hitting the cap is not an error: Result.Converged is false and Result.Rank
// holds the last product. maxIterations == 0 returns a copy of initial.
//
// Errors:
//   - ErrInvalidShape, ErrInvalidParameter, ErrInvalidEntry, ErrDanglingNode.
//
// Complexity:
//   - Time O(n² · (1 + maxIterations)) for *matrix.Dense input, Space O(n²).
func PageRank(adjacency matrix.Matrix, initial []float64, maxIterations int, q, epsilon float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate eagerly; nothing is allocated on failure.
	if err := validateShape(adjacency, initial, true); err != nil {
		return nil, pagerankErrorf(opPageRank, err)
	}
	if err := validateParams(maxIterations, q, epsilon); err != nil {
		return nil, pagerankErrorf(opPageRank, err)
	}
	if o.validateInput {
		if err := validateEntries(adjacency, initial); err != nil {
			return nil, pagerankErrorf(opPageRank, err)
		}
	}

	// Stage 2: operator.
	M, dangling, err := dampedOperator(adjacency, q, o)
	if err != nil {
		return nil, pagerankErrorf(opPageRank, err)
	}

	// Stage 3: iterate with two buffers, swapped after each product.
	n := len(initial)
	cur := make([]float64, n)
	copy(cur, initial)
	next := make([]float64, n)

	res := &Result{Dangling: dangling}
	var delta float64
	for k := 0; k < maxIterations; k++ {
		if err = matrix.MatVecInto(M, cur, next); err != nil {
			return nil, pagerankErrorf(opPageRank, err)
		}
		if delta, err = matrix.L1Distance(next, cur); err != nil {
			return nil, pagerankErrorf(opPageRank, err)
		}
		cur, next = next, cur
		res.Iterations = k + 1
		res.Delta = delta
		if delta < epsilon {
			res.Converged = true
			break
		}
	}
	res.Rank = cur

	return res, nil
}

// Rank is PageRank reduced to the rank vector.
func Rank(adjacency matrix.Matrix, initial []float64, maxIterations int, q, epsilon float64, opts ...Option) ([]float64, error) {
	res, err := PageRank(adjacency, initial, maxIterations, q, epsilon, opts...)
	if err != nil {
		return nil, err
	}

	return res.Rank, nil
}

// UniformRank returns the length-n vector with every entry 1/n, the usual
// starting point when the caller has no prior estimate.
// Errors: ErrInvalidShape when n < 1.
func UniformRank(n int) ([]float64, error) {
	if n < 1 {
		return nil, pagerankErrorf(opUniform, ErrInvalidShape)
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = 1 / float64(n)
	}

	return r, nil
}
