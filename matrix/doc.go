// SPDX-License-Identifier: MIT

// Package matrix provides the row-major storage the vector analysis engine runs on.
//
// The matrix package provides:
//
//   - Matrix: a small interface (Rows/Cols/At/Set/Clone) over float64 grids.
//   - Dense: a flat, row-major implementation with bounds-checked accessors.
//   - NewFromRows / ToRows: copying bridges between [][]float64 ("list of vectors
//     as rows") and Dense, with fail-fast rejection of empty and ragged input.
//   - Validators: a single source of truth for nil/shape/finite checks.
//   - Kernels: Transpose, MatVec and AllClose, used by the span package to
//     verify dependency coefficients and by tests to compare results.
//
// Row order is meaningful everywhere in this package: row i of a Dense built by
// NewFromRows is input vector i, and no function reorders rows of its argument.
//
// See the examples in this package and in span for usage patterns.
package matrix
