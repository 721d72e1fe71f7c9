// SPDX-License-Identifier: MIT

package span

import "github.com/katalvlaran/vectorspan/matrix"

// Dependencies returns a basis of the coefficient vectors c with
// c[0]·v0 + c[1]·v1 + ... = 0, where vi are the rows of m.
//
// Implementation:
//   - Stage 1: transpose m so the vectors become columns of T.
//   - Stage 2: reduce T with the RREF pass and record its pivot columns.
//   - Stage 3: for every free (non-pivot) column f emit c with c[f] = 1 and
//     c[p] = -R[i][f] for the pivot p of reduced row i.
//
// Behavior highlights:
//   - One vector per redundant input vector; an independent set yields none.
//   - Each c satisfies Tc ≈ 0 within the elimination's rounding.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(c·r·min(r,c)), Space O(r·c).
func Dependencies(m matrix.Matrix) ([][]float64, error) {
	if err := validateInput(opDependencies, m); err != nil {
		return nil, err
	}
	t, err := matrix.Transpose(m)
	if err != nil {
		return nil, spanErrorf(opDependencies, err)
	}
	a, err := workingCopy(opDependencies, t)
	if err != nil {
		return nil, err
	}

	pivots := rrefInPlace(a)
	n := m.Rows()

	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}

	out := make([][]float64, 0, n-len(pivots))
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		c := make([]float64, n)
		c[f] = 1
		for i, p := range pivots {
			if v := a[i][f]; v != 0 {
				c[p] = -v
			}
		}
		out = append(out, c)
	}

	return out, nil
}
