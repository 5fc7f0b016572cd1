// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by the PageRank
// solver: a row-major Dense type, sentinel errors, central validators and a
// small set of deterministic kernels.
//
// The package provides:
//
//   - Dense: flat row-major float64 storage with bounds-checked At/Set and an
//     optional finite-value numeric policy (see options.go).
//   - Kernels: Add, Mul, Transpose, Scale, MatVec, MatVecInto.
//   - Facades: NewDiagonal, NewFilled, RowSums, ColSums,
//     L1Distance, VecSum.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateVecLen, ...
//
// Determinism:
//
//	Every kernel walks its operands in a fixed i→j (or i→k→j) order, so two
//	calls with identical inputs produce bit-identical outputs.
//
// Complexity:
//
//	Dense storage is O(r*c); MatVec is O(r*c); Mul is O(r*n*c).
//
// Matrices are meant for dense or small graphs where O(n²) memory and work per
// product are acceptable.
package matrix
