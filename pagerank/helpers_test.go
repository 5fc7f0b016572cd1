// SPDX-License-Identifier: MIT
// Package pagerank_test holds shared fixtures for the solver tests.

package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/pagerank/matrix"
	"github.com/stretchr/testify/require"
)

// scenarioRows is the 4-node graph used across the suite:
// 0→{1,3}, 1→{0,2}, 2→{1}, 3→{2}. Node 1 has in-degree 2, node 3 in-degree 1.
var scenarioRows = [][]float64{
	{0, 1, 0, 1},
	{1, 0, 1, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
}

var scenarioRank = []float64{0.2, 0.4, 0.2, 0.2}

// hide wraps a Matrix so the solver takes the generic At/Set path.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// ring returns the n-cycle i→i+1 plus a chord i→i+2, every row non-zero.
func ring(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, (i+1)%n, 1))
		require.NoError(t, m.Set(i, (i+2)%n, 0.5))
	}

	return m
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
