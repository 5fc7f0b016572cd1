// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/katalvlaran/pagerank/pagerank"
)

// Status codes returned across the C boundary.
const (
	StatusOK               = 0
	StatusInvalidShape     = 1 // bad dimension, length or null pointer
	StatusInvalidParameter = 2
	StatusDanglingNode     = 3
	StatusInternal         = 4 // includes invalid entries
)

// statusOf maps a RankFlat error to its status code.
func statusOf(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, pagerank.ErrInvalidShape):
		return StatusInvalidShape
	case errors.Is(err, pagerank.ErrInvalidParameter):
		return StatusInvalidParameter
	case errors.Is(err, pagerank.ErrDanglingNode):
		return StatusDanglingNode
	default:
		return StatusInternal
	}
}
