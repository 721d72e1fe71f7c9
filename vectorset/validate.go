// SPDX-License-Identifier: MIT

package vectorset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/katalvlaran/vectorspan/span"
)

const opValidate = "Validate"

// Validate reports whether the set is worth analyzing.
//
// Errors:
//   - ErrNonFinite for the first NaN/±Inf component (with coordinates,
//     via matrix.ValidateFinite);
//   - ErrAllZero when every component has magnitude below span.Epsilon.
func (s Set) Validate() error {
	m, err := s.Matrix()
	if err != nil {
		return setErrorf(opValidate, err)
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return setErrorf(opValidate, fmt.Errorf("%w: %w", ErrNonFinite, err))
	}

	for _, v := range s.vectors {
		for _, c := range v {
			if math.Abs(c) >= span.Epsilon {
				return nil
			}
		}
	}

	return setErrorf(opValidate, ErrAllZero)
}
