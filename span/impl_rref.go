// SPDX-License-Identifier: MIT

package span

import "github.com/katalvlaran/vectorspan/matrix"

// RREF returns the reduced row echelon form of m as a new Dense of the same shape.
//
// Implementation (Gauss-Jordan with a lead-column cursor):
//   - For each row r: stop once lead reaches the column count.
//   - Find a row i >= r with |a[i][lead]| > Epsilon; when the column has none,
//     move lead right and retry the same r (return as soon as lead runs out).
//   - Swap row i into r, divide the whole row by a[r][lead], clear column lead
//     in every other row, then advance lead.
//
// Behavior highlights:
//   - Each pivot column ends with a single 1; pivots move strictly right going down.
//   - m is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func RREF(m matrix.Matrix) (*matrix.Dense, error) {
	a, err := workingCopy(opRREF, m)
	if err != nil {
		return nil, err
	}
	rrefInPlace(a)

	out, err := matrix.NewFromRows(a, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, spanErrorf(opRREF, err)
	}

	return out, nil
}

// rrefInPlace reduces a and returns the pivot column of each reduced row, top to bottom.
func rrefInPlace(a [][]float64) []int {
	rows, cols := len(a), len(a[0])
	pivots := make([]int, 0, min(rows, cols))

	lead := 0
	var i, j, k int
	var val float64
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return pivots
		}

		i = r
		for isZero(a[i][lead]) {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return pivots
				}
			}
		}

		a[r], a[i] = a[i], a[r]

		val = a[r][lead]
		for j = 0; j < cols; j++ {
			a[r][j] /= val
		}

		for k = 0; k < rows; k++ {
			if k == r {
				continue
			}
			val = a[k][lead]
			if val == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				a[k][j] -= val * a[r][j]
			}
		}

		pivots = append(pivots, lead)
		lead++
	}

	return pivots
}
