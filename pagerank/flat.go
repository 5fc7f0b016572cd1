// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pagerank/matrix"
)

// RankFlat is the buffer-level entry point for foreign callers.
//
// Contract:
//   - adjacency holds exactly n*n values in row-major order.
//   - initial holds exactly n values.
//   - out holds at least n values; out[:n] receives the ranks in node order.
//     out may alias initial; adjacency and initial are copied before use.
//
// Every length is checked instead of trusted. On error out is left untouched.
// The returned Result carries its own copy of the ranks plus the run summary.
//
// Errors:
//   - ErrInvalidShape (n < 1 or a length mismatch), ErrInvalidParameter
//     (including maxIterations beyond the platform int), and every PageRank error.
func RankFlat(
	adjacency []float64,
	n int,
	initial []float64,
	maxIterations uint64,
	q, epsilon float64,
	out []float64,
	opts ...Option,
) (*Result, error) {
	if n < 1 || n > math.MaxInt32 || uint64(n)*uint64(n) > math.MaxInt {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: dimension %d", ErrInvalidShape, n))
	}
	if len(adjacency) != n*n {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: adjacency has %d values, want %d", ErrInvalidShape, len(adjacency), n*n))
	}
	if len(initial) != n {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: initial rank has %d values, want %d", ErrInvalidShape, len(initial), n))
	}
	if len(out) < n {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: output buffer has %d values, want %d", ErrInvalidShape, len(out), n))
	}
	if maxIterations > math.MaxInt {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: maxIterations %d overflows int", ErrInvalidParameter, maxIterations))
	}

	// Entry checks belong to PageRank (ErrInvalidEntry), so ingest unchecked.
	A, err := matrix.NewDenseFromData(n, n, adjacency, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, pagerankErrorf(opRankFlat, fmt.Errorf("%w: %w", ErrInvalidShape, err))
	}
	res, err := PageRank(A, initial, int(maxIterations), q, epsilon, opts...)
	if err != nil {
		return nil, pagerankErrorf(opRankFlat, err)
	}
	copy(out[:n], res.Rank)

	return res, nil
}
