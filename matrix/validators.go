// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finite checks here.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
// AI-Hints: Use before determinant-like kernels.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateNonEmpty checks that m is non-nil and has at least one row and one column.
// The Matrix interface allows custom implementations to report zero sizes;
// Dense itself never does.
//
// Errors: ErrNilMatrix, ErrEmptyRows.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyRows)
	}

	return nil
}

// ValidateRows checks a "list of vectors" before ingestion:
// at least one row, first row non-empty, all rows of the same length.
//
// Errors: ErrEmptyRows, ErrRaggedRows (wrapped with the offending row index).
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrEmptyRows)
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d components, want %d", i, len(rows[i]), c), ErrRaggedRows)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and fails on the first NaN/±Inf element.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/d.c, idx%d.c, ErrNaNInf))
			}
		}

		return nil
	}
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
