// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"strings"
)

// Defaults used by callers that do not pick their own parameters.
const (
	// DefaultDamping is the conventional probability of following a link.
	DefaultDamping = 0.85

	// DefaultEpsilon is the L1 convergence threshold.
	DefaultEpsilon = 1e-3

	// DefaultMaxIterations caps the number of matrix-vector products.
	DefaultMaxIterations = 1000
)

// DanglingPolicy selects how rows with zero out-degree are handled.
type DanglingPolicy int

const (
	// DanglingUniform treats a dangling row as linking to every node,
	// keeping the operator column-stochastic.
	DanglingUniform DanglingPolicy = iota

	// DanglingPropagate keeps 1/0 = +Inf in the degree matrix; the resulting
	// NaN column spreads to every rank entry.
	DanglingPropagate

	// DanglingReject fails with ErrDanglingNode before any iteration.
	DanglingReject
)

var danglingNames = [...]string{
	DanglingUniform:   "uniform",
	DanglingPropagate: "propagate",
	DanglingReject:    "reject",
}

// String returns the lower-case policy name.
func (p DanglingPolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("DanglingPolicy(%d)", int(p))
	}

	return danglingNames[p]
}

func (p DanglingPolicy) valid() bool {
	return p >= DanglingUniform && p <= DanglingReject
}

// ParseDanglingPolicy maps "uniform", "propagate" or "reject" (any case) to
// a policy.
func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range danglingNames {
		if n == name {
			return DanglingPolicy(p), nil
		}
	}

	return 0, fmt.Errorf("dangling policy %q: %w", s, ErrInvalidParameter)
}

// Result is the outcome of one PageRank run.
//
// Fields:
//   - Rank      : final rank vector, len n, fresh memory owned by the caller.
//   - Iterations: number of matrix-vector products performed.
//   - Converged : true when the last L1 step distance dropped below epsilon.
//   - Delta     : the last L1 step distance (0 when no product ran).
//   - Dangling  : ascending indices of zero-out-degree rows.
type Result struct {
	Rank       []float64
	Iterations int
	Converged  bool
	Delta      float64
	Dangling   []int
}

// Option configures a PageRank run.
type Option func(*options)

type options struct {
	dangling      DanglingPolicy
	validateInput bool
}

// WithDanglingPolicy selects the dangling-node policy.
// Panics on an unknown policy value (programmer error).
func WithDanglingPolicy(p DanglingPolicy) Option {
	if !p.valid() {
		panic(fmt.Sprintf("pagerank: WithDanglingPolicy: unknown policy %d", int(p)))
	}

	return func(o *options) { o.dangling = p }
}

// WithoutInputValidation skips the scan that rejects negative or non-finite
// adjacency and rank entries.
func WithoutInputValidation() Option {
	return func(o *options) { o.validateInput = false }
}

func gatherOptions(user ...Option) options {
	o := options{
		dangling:      DanglingUniform,
		validateInput: true,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
