// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/pagerank"
	"golang.org/x/xerrors"
)

// job is the JSON input of one solve:
//
//	{"adjacency": [[0, 1], [1, 0]], "rank": [0.5, 0.5]}
//
// rank is optional and defaults to the uniform vector.
type job struct {
	Adjacency [][]float64 `json:"adjacency"`
	Rank      []float64   `json:"rank,omitempty"`
}

// readJobFile decodes the job at path; "-" reads from stdin.
func readJobFile(path string, stdin io.Reader) (*matrix.Dense, []float64, error) {
	if path == "-" {
		return readJob(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, xerrors.Errorf("open job: %w", err)
	}
	defer f.Close()

	return readJob(f)
}

// readJob decodes one job and builds its adjacency matrix.
func readJob(r io.Reader) (*matrix.Dense, []float64, error) {
	var j job
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&j); err != nil {
		return nil, nil, xerrors.Errorf("decode job: %w", err)
	}
	if len(j.Adjacency) == 0 {
		return nil, nil, xerrors.Errorf("decode job: adjacency is empty: %w", pagerank.ErrInvalidShape)
	}

	A, err := matrix.NewDenseFromRows(j.Adjacency, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, nil, xerrors.Errorf("decode job: adjacency: %w", err)
	}
	if j.Rank == nil {
		if j.Rank, err = pagerank.UniformRank(A.Rows()); err != nil {
			return nil, nil, err
		}
	}

	return A, j.Rank, nil
}
