// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf / denseErrorf;
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty/ragged shape -> index -> NaN/Inf -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrEmptyRows is returned by NewFromRows when there are no rows or the
	// first row has no components.
	ErrEmptyRows = errors.New("matrix: no rows or zero-length rows")

	// ErrRaggedRows is returned by NewFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. AllClose on different shapes, or MatVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
