// SPDX-License-Identifier: MIT

// Package matrix - numeric comparison helpers.
//
// AllClose is the tolerance-based equality used to compare engine output,
// e.g. RREF idempotency; it never mutates its operands.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - non-finite tolerances are rejected with ErrNaNInf.
//
// AI-Hints:
//   - AllClose(x, y, 0, span.Epsilon) mirrors the engine's own zero test.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar form of the AllClose relation.
func closeEnough(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b { // covers equal infinities
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
