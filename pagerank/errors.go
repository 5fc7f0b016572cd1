// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"
	"math"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/pagerank/matrix"
	"golang.org/x/xerrors"
)

// Every run is validated eagerly, before the operator is built, in this order:
// shape -> parameters -> entries -> dangling rows.
var (
	// ErrInvalidShape indicates a nil or non-square adjacency, or an initial
	// rank (or flat buffer) whose length does not match n.
	ErrInvalidShape = errors.New("pagerank: invalid shape")

	// ErrInvalidParameter indicates maxIterations < 0, q outside [0,1], or
	// epsilon < 0 (NaN counts as out of range).
	ErrInvalidParameter = errors.New("pagerank: invalid parameter")

	// ErrInvalidEntry indicates a negative or non-finite adjacency or rank entry.
	ErrInvalidEntry = errors.New("pagerank: negative or non-finite entry")

	// ErrDanglingNode indicates a zero out-degree row under DanglingReject.
	ErrDanglingNode = errors.New("pagerank: dangling node")
)

const (
	opPageRank   = "PageRank"
	opRankFlat   = "RankFlat"
	opTransition = "TransitionMatrix"
	opOperator   = "DampedOperator"
	opOutDegrees = "OutDegrees"
	opUniform    = "UniformRank"
)

// pagerankErrorf tags err with the public operation name.
func pagerankErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateShape checks adjacency is a non-nil square matrix and, when initial
// is given, that len(initial) == n.
func validateShape(adjacency matrix.Matrix, initial []float64, checkInitial bool) error {
	if err := matrix.ValidateSquareNonNil(adjacency); err != nil {
		return fmt.Errorf("%w: adjacency: %w", ErrInvalidShape, err)
	}
	if !checkInitial {
		return nil
	}
	if err := matrix.ValidateVecLen(initial, adjacency.Rows()); err != nil {
		return fmt.Errorf("%w: initial rank has %d entries, want %d", ErrInvalidShape, len(initial), adjacency.Rows())
	}

	return nil
}

// validateDamping reports a q outside [0,1].
func validateDamping(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return xerrors.Errorf("damping factor %v must be in the range [0, 1]: %w", q, ErrInvalidParameter)
	}

	return nil
}

// validateParams collects every parameter violation into one error.
// Each collected error matches ErrInvalidParameter.
func validateParams(maxIterations int, q, epsilon float64) error {
	var err error
	if maxIterations < 0 {
		err = multierror.Append(err, xerrors.Errorf("maxIterations %d must be >= 0: %w", maxIterations, ErrInvalidParameter))
	}
	if qErr := validateDamping(q); qErr != nil {
		err = multierror.Append(err, qErr)
	}
	if math.IsNaN(epsilon) || epsilon < 0 {
		err = multierror.Append(err, xerrors.Errorf("epsilon %v must be >= 0: %w", epsilon, ErrInvalidParameter))
	}

	return err
}

// validateEntries rejects negative or non-finite adjacency entries and, when
// given, negative or non-finite initial rank entries.
func validateEntries(adjacency matrix.Matrix, initial []float64) error {
	if err := validateAdjacency(adjacency); err != nil {
		return err
	}
	for i, v := range initial {
		if !validEntry(v) {
			return fmt.Errorf("%w: initial[%d] = %v", ErrInvalidEntry, i, v)
		}
	}

	return nil
}

// validateAdjacency scans adjacency in row-major order and reports the first
// invalid entry. *matrix.Dense is visited without per-element bounds checks.
func validateAdjacency(adjacency matrix.Matrix) error {
	if d, ok := adjacency.(*matrix.Dense); ok {
		var err error
		d.Do(func(i, j int, v float64) bool {
			if validEntry(v) {
				return true
			}
			err = fmt.Errorf("%w: adjacency[%d][%d] = %v", ErrInvalidEntry, i, j, v)
			return false
		})

		return err
	}

	n := adjacency.Rows()
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = adjacency.At(i, j); err != nil {
				return err
			}
			if !validEntry(v) {
				return fmt.Errorf("%w: adjacency[%d][%d] = %v", ErrInvalidEntry, i, j, v)
			}
		}
	}

	return nil
}

func validEntry(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) // NaN fails v >= 0
}
