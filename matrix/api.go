// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions and reductions.
//   - Avoid logic duplication: reductions compose the canonical kernels.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewDiagonal returns the n×n matrix with diag on its main diagonal, n = len(diag).
// Values are checked against the numeric policy resolved from opts, so a
// diagonal carrying +Inf needs WithNoValidateNaNInf().
//
// Errors: ErrInvalidDimensions (empty diag), ErrNaNInf (policy ON).
// Complexity: O(n^2).
func NewDiagonal(diag []float64, opts ...Option) (*Dense, error) {
	n := len(diag)
	D, err := NewDenseWith(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf("NewDiagonal", err)
	}
	for i, v := range diag {
		if err = D.Set(i, i, v); err != nil {
			return nil, matrixErrorf("NewDiagonal", err)
		}
	}

	return D, nil
}

// NewFilled returns a rows×cols matrix with every entry equal to v.
// Errors: ErrInvalidDimensions, ErrNaNInf (policy ON and v non-finite).
// Complexity: O(r*c).
//
// AI-Hints: builds the uniform teleportation term of a damped operator.
func NewFilled(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	F, err := NewDenseWith(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}
	if F.validateNaNInf && isNonFinite(v) {
		return nil, matrixErrorf("NewFilled", ErrNaNInf)
	}
	for idx := range F.data {
		F.data[idx] = v
	}

	return F, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)); no custom loops.
// Complexity: O(r*c).
//
// AI-Hints: out-degrees of an adjacency matrix.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Implementation: Transpose then MatVec with ones(rows).
// Complexity: O(r*c).
//
// AI-Hints: in-degrees of an adjacency; column-stochastic checks.
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(mt)
}

// VecSum returns Σ x[i] accumulated in index order.
// Complexity: O(n).
func VecSum(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v
	}

	return s
}
