// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/pagerank/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDanglingPolicy_String(t *testing.T) {
	assert.Equal(t, "uniform", pagerank.DanglingUniform.String())
	assert.Equal(t, "propagate", pagerank.DanglingPropagate.String())
	assert.Equal(t, "reject", pagerank.DanglingReject.String())
	assert.Equal(t, "DanglingPolicy(7)", pagerank.DanglingPolicy(7).String())
}

func TestParseDanglingPolicy(t *testing.T) {
	cases := map[string]pagerank.DanglingPolicy{
		"uniform":     pagerank.DanglingUniform,
		"Propagate":   pagerank.DanglingPropagate,
		"  REJECT \n": pagerank.DanglingReject,
	}
	for in, want := range cases {
		got, err := pagerank.ParseDanglingPolicy(in)
		require.NoErrorf(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := pagerank.ParseDanglingPolicy("spread")
	require.ErrorIs(t, err, pagerank.ErrInvalidParameter)
	_, err = pagerank.ParseDanglingPolicy("")
	require.ErrorIs(t, err, pagerank.ErrInvalidParameter)
}

func TestWithDanglingPolicy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { pagerank.WithDanglingPolicy(pagerank.DanglingPolicy(-1)) })
	assert.Panics(t, func() { pagerank.WithDanglingPolicy(pagerank.DanglingPolicy(3)) })
	assert.NotPanics(t, func() { pagerank.WithDanglingPolicy(pagerank.DanglingReject) })
}

func TestPageRank_NilOptionIgnored(t *testing.T) {
	_, err := pagerank.PageRank(mustRows(t, scenarioRows), scenarioRank, 10, 0.85, 1e-3, nil)
	require.NoError(t, err)
}
