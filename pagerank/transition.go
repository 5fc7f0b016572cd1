// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
)

// OutDegrees returns the row sums of a square adjacency matrix.
// Errors: ErrInvalidShape.
func OutDegrees(adjacency matrix.Matrix) ([]float64, error) {
	if err := validateShape(adjacency, nil, false); err != nil {
		return nil, pagerankErrorf(opOutDegrees, err)
	}
	deg, err := matrix.RowSums(adjacency)
	if err != nil {
		return nil, pagerankErrorf(opOutDegrees, err)
	}

	return deg, nil
}

// TransitionMatrix returns T = (D × A)ᵀ with D = diag(1/outDegree), together
// with the ascending indices of dangling rows. T[i,j] = A[j,i] / outDegree[j].
//
// Dangling rows follow the configured DanglingPolicy (default uniform).
//
// Errors: ErrInvalidShape, ErrInvalidEntry, ErrDanglingNode.
func TransitionMatrix(adjacency matrix.Matrix, opts ...Option) (*matrix.Dense, []int, error) {
	o := gatherOptions(opts...)
	if err := validateShape(adjacency, nil, false); err != nil {
		return nil, nil, pagerankErrorf(opTransition, err)
	}
	if o.validateInput {
		if err := validateEntries(adjacency, nil); err != nil {
			return nil, nil, pagerankErrorf(opTransition, err)
		}
	}
	T, dangling, err := transition(adjacency, o)
	if err != nil {
		return nil, nil, pagerankErrorf(opTransition, err)
	}

	return T, dangling, nil
}

// DampedOperator returns M = q·T + E, where E[i,j] = (1-q)/n, together with
// the dangling row indices. Under DanglingUniform every column of M sums to 1.
//
// Errors: ErrInvalidShape, ErrInvalidParameter, ErrInvalidEntry, ErrDanglingNode.
func DampedOperator(adjacency matrix.Matrix, q float64, opts ...Option) (*matrix.Dense, []int, error) {
	o := gatherOptions(opts...)
	if err := validateShape(adjacency, nil, false); err != nil {
		return nil, nil, pagerankErrorf(opOperator, err)
	}
	if err := validateDamping(q); err != nil {
		return nil, nil, pagerankErrorf(opOperator, err)
	}
	if o.validateInput {
		if err := validateEntries(adjacency, nil); err != nil {
			return nil, nil, pagerankErrorf(opOperator, err)
		}
	}
	M, dangling, err := dampedOperator(adjacency, q, o)
	if err != nil {
		return nil, nil, pagerankErrorf(opOperator, err)
	}

	return M, dangling, nil
}

// transition builds T on validated input.
//
// Implementation:
//   - Stage 1: out-degrees via matrix.RowSums; collect zero rows.
//   - Stage 2: apply the dangling policy (reject, fill with ones, or keep).
//   - Stage 3: D = diag(1/deg) with the finite-value policy off, so a zero
//     degree becomes +Inf under DanglingPropagate.
//   - Stage 4: T = (D × A)ᵀ.
func transition(adjacency matrix.Matrix, o options) (*matrix.Dense, []int, error) {
	n := adjacency.Rows()
	deg, err := matrix.RowSums(adjacency)
	if err != nil {
		return nil, nil, err
	}
	dangling := danglingRows(deg)

	A := adjacency
	if len(dangling) > 0 {
		switch o.dangling {
		case DanglingReject:
			return nil, dangling, fmt.Errorf("%w: rows %v have no outgoing links", ErrDanglingNode, dangling)
		case DanglingUniform:
			if A, err = fillRows(adjacency, dangling, deg); err != nil {
				return nil, nil, err
			}
		case DanglingPropagate:
			// keep zero degrees; 1/0 below yields +Inf
		}
	}

	inv := make([]float64, n)
	for i, d := range deg {
		inv[i] = 1 / d
	}
	D, err := matrix.NewDiagonal(inv, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, err
	}
	DA, err := matrix.Mul(D, A)
	if err != nil {
		return nil, nil, err
	}
	T, err := matrix.Transpose(DA)
	if err != nil {
		return nil, nil, err
	}

	return T.(*matrix.Dense), dangling, nil // kernels always return *Dense
}

// dampedOperator builds M = q·T + E on validated input.
func dampedOperator(adjacency matrix.Matrix, q float64, o options) (*matrix.Dense, []int, error) {
	T, dangling, err := transition(adjacency, o)
	if err != nil {
		return nil, dangling, err
	}
	n := T.Rows()
	qT, err := matrix.Scale(T, q)
	if err != nil {
		return nil, nil, err
	}
	E, err := matrix.NewFilled(n, n, (1-q)/float64(n))
	if err != nil {
		return nil, nil, err
	}
	M, err := matrix.Add(qT, E)
	if err != nil {
		return nil, nil, err
	}

	return M.(*matrix.Dense), dangling, nil
}

// danglingRows returns the ascending indices i with deg[i] == 0.
func danglingRows(deg []float64) []int {
	var rows []int
	for i, d := range deg {
		if d == 0 {
			rows = append(rows, i)
		}
	}

	return rows
}

// fillRows returns a copy of adjacency whose listed rows are all ones, and
// updates deg for those rows to n. The input matrix is not touched.
func fillRows(adjacency matrix.Matrix, rows []int, deg []float64) (matrix.Matrix, error) {
	n := adjacency.Cols()
	A := adjacency.Clone()
	for _, i := range rows {
		for j := 0; j < n; j++ {
			if err := A.Set(i, j, 1); err != nil {
				return nil, err
			}
		}
		deg[i] = float64(n)
	}

	return A, nil
}
