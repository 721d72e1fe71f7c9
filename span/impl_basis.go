// SPDX-License-Identifier: MIT

package span

import (
	"math"

	"github.com/katalvlaran/vectorspan/matrix"
)

// BasisIndices returns, in column order, the input row index attached to each
// RREF pivot column. Exactly Rank(m) indices are returned.
//
// Implementation:
//   - Stage 1: compute rank and RREF, each from the original m.
//   - Stage 2: scan columns left to right, rows top to bottom, for an entry
//     within Epsilon of 1 whose column is otherwise within Epsilon of 0.
//     The first such row is recorded and the scan moves to the next column.
//   - Stage 3: stop once rank indices are collected.
//
// Notes:
//   - The index is the RREF row position, mapped back onto the input rows.
//     Callers get vectors they typed in rather than abstract RREF rows.
//   - Indices may repeat: a reduced row holding several clean 1 columns
//     (e.g. [[1,1,0],[0,0,1]]) is picked once per such column, giving [0,0].
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
func BasisIndices(m matrix.Matrix) ([]int, error) {
	a, err := workingCopy(opBasis, m)
	if err != nil {
		return nil, err
	}
	rank := rankInPlace(a)
	if rank == 0 {
		return []int{}, nil
	}

	// Fresh copy for RREF: the rank pass above already reordered a.
	if a, err = workingCopy(opBasis, m); err != nil {
		return nil, err
	}
	rrefInPlace(a)

	return pivotRows(a, rank), nil
}

// BasisVectors returns copies of the input vectors selected by BasisIndices.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
func BasisVectors(m matrix.Matrix) ([][]float64, error) {
	idx, err := BasisIndices(m)
	if err != nil {
		return nil, err
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, spanErrorf(opBasis, err)
	}

	return pickRows(rows, idx), nil
}

// pivotRows scans the reduced matrix r for up to rank true pivot positions.
func pivotRows(r [][]float64, rank int) []int {
	rows, cols := len(r), len(r[0])
	out := make([]int, 0, rank)

	for col := 0; col < cols && len(out) < rank; col++ {
		for row := 0; row < rows; row++ {
			if math.Abs(r[row][col]-1) > Epsilon {
				continue
			}
			if isPivotColumn(r, row, col) {
				out = append(out, row)
				break
			}
		}
	}

	return out
}

// isPivotColumn reports whether every entry of column col except row is ~0.
func isPivotColumn(r [][]float64, row, col int) bool {
	for k := range r {
		if k != row && !isZero(r[k][col]) {
			return false
		}
	}

	return true
}

// pickRows copies rows[i] for every i in idx.
func pickRows(rows [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for k, i := range idx {
		v := make([]float64, len(rows[i]))
		copy(v, rows[i])
		out[k] = v
	}

	return out
}
