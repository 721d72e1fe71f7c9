// SPDX-License-Identifier: MIT

package span

import (
	"errors"
	"math"

	"github.com/katalvlaran/vectorspan/matrix"
)

// Determinant returns det(m) for a square m.
//
// Implementation:
//   - For each i, pick the row at or below i with the largest |a[r][i]|
//     (partial pivoting).
//   - If that magnitude is <= Epsilon the matrix is singular: return exactly 0.
//   - A swap negates the accumulator; the accumulator is then multiplied by
//     the pivot and rows below are reduced by scaled subtraction.
//
// Notes:
//   - Rows are never divided through; this pass is independent of Rank/RREF
//     on purpose since normalization would change the determinant.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare (caller contract).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m matrix.Matrix) (float64, error) {
	if err := validateInput(opDeterminant, m); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return 0, spanErrorf(opDeterminant, ErrNonSquare)
		}
		return 0, spanErrorf(opDeterminant, err)
	}
	a, err := workingCopy(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	return determinantInPlace(a), nil
}

// determinantInPlace runs partial-pivoting elimination on the square a.
func determinantInPlace(a [][]float64) float64 {
	n := len(a)
	det := 1.0

	var i, r, c, pivotRow int
	var factor float64
	for i = 0; i < n; i++ {
		pivotRow = i
		for r = i + 1; r < n; r++ {
			if math.Abs(a[r][i]) > math.Abs(a[pivotRow][i]) {
				pivotRow = r
			}
		}
		if isZero(a[pivotRow][i]) {
			return 0 // singular
		}

		if pivotRow != i {
			a[i], a[pivotRow] = a[pivotRow], a[i]
			det = -det
		}

		det *= a[i][i]

		for r = i + 1; r < n; r++ {
			factor = a[r][i] / a[i][i]
			if factor == 0 {
				continue
			}
			for c = i; c < n; c++ {
				a[r][c] -= factor * a[i][c]
			}
		}
	}

	return det
}
