// SPDX-License-Identifier: MIT

package span

import (
	"errors"
	"math"

	"github.com/katalvlaran/vectorspan/matrix"
)

// workingCopy validates m and returns a private row-slice copy of it.
// Kernels eliminate on the copy; swapping whole rows is a slice-header swap.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix; accessor errors from custom Matrix types.
func workingCopy(op string, m matrix.Matrix) ([][]float64, error) {
	if err := validateInput(op, m); err != nil {
		return nil, err
	}
	a, err := matrix.ToRows(m)
	if err != nil {
		return nil, spanErrorf(op, err)
	}

	return a, nil
}

// isZero is the package-wide zero test.
func isZero(v float64) bool { return math.Abs(v) <= Epsilon }

// validateInput runs matrix.ValidateNonEmpty and reports an empty shape as
// ErrEmptyMatrix.
func validateInput(op string, m matrix.Matrix) error {
	err := matrix.ValidateNonEmpty(m)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matrix.ErrEmptyRows):
		return spanErrorf(op, ErrEmptyMatrix)
	}

	return spanErrorf(op, err)
}
