// SPDX-License-Identifier: MIT
// Package span: sentinel error set.
// All kernels return these sentinels (wrapped with an operation tag) or
// matrix sentinels from validation; tests match via errors.Is.

package span

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vectorspan/matrix"
)

var (
	// ErrEmptyMatrix is returned for a matrix with no rows or no columns.
	// It also matches matrix.ErrEmptyRows.
	ErrEmptyMatrix = fmt.Errorf("span: empty matrix: %w", matrix.ErrEmptyRows)

	// ErrNonSquare is returned by Determinant when rows != cols. This is a
	// contract violation by the caller, not a property of user data.
	// It also matches matrix.ErrNonSquare.
	ErrNonSquare = fmt.Errorf("span: determinant of non-square matrix: %w", matrix.ErrNonSquare)

	// ErrInvalidResult is returned by Result.Validate when a Result breaks one
	// of its documented invariants (typically after being decoded or edited).
	ErrInvalidResult = errors.New("span: result violates invariants")
)

// spanErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func spanErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
