// SPDX-License-Identifier: MIT

package span

import "github.com/katalvlaran/vectorspan/matrix"

// Rank returns the number of linearly independent rows of m.
//
// Implementation:
//   - Stage 1: validate m and take a private copy.
//   - Stage 2: sweep columns left to right while rank < rows. The first row at or
//     below `rank` with |a[r][col]| > Epsilon is the pivot; a column without one
//     contributes nothing.
//   - Stage 3: swap the pivot row into place, divide it by the pivot from the
//     pivot column on, then clear that column in EVERY other row (above and
//     below), and count the pivot.
//
// Behavior highlights:
//   - All-zero input yields 0; m is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func Rank(m matrix.Matrix) (int, error) {
	a, err := workingCopy(opRank, m)
	if err != nil {
		return 0, err
	}

	return rankInPlace(a), nil
}

// rankInPlace runs the rank elimination on a, which it owns.
func rankInPlace(a [][]float64) int {
	rows, cols := len(a), len(a[0])
	rank := 0

	var r, j, pivotRow int
	var pivot, factor float64
	for col := 0; col < cols && rank < rows; col++ {
		pivotRow = -1
		for r = rank; r < rows; r++ {
			if !isZero(a[r][col]) {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			continue // no pivot in this column
		}

		a[rank], a[pivotRow] = a[pivotRow], a[rank]

		pivot = a[rank][col]
		for j = col; j < cols; j++ {
			a[rank][j] /= pivot
		}

		for r = 0; r < rows; r++ {
			if r == rank {
				continue
			}
			factor = a[r][col]
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				a[r][j] -= factor * a[rank][j]
			}
		}

		rank++
	}

	return rank
}
