// SPDX-License-Identifier: MIT

package span

import "fmt"

// Validate checks the documented Result invariants. It is meant for results
// that crossed a serialization boundary; Analyze always produces valid ones.
//
// Errors:
//   - ErrInvalidResult wrapped with the first violated invariant.
func (r *Result) Validate() error {
	fail := func(format string, args ...any) error {
		return spanErrorf(opValidateResult, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidResult))
	}

	if r.Dimension < 1 || r.VectorCount < 1 {
		return fail("dimension %d, vectors %d", r.Dimension, r.VectorCount)
	}
	if r.Rank < 0 || r.Rank > min(r.VectorCount, r.Dimension) {
		return fail("rank %d out of [0,%d]", r.Rank, min(r.VectorCount, r.Dimension))
	}
	if r.IsLinearlyIndependent != (r.Rank == r.VectorCount) {
		return fail("independence flag %t with rank %d of %d", r.IsLinearlyIndependent, r.Rank, r.VectorCount)
	}
	if (r.Determinant != nil) != r.IsSquare() {
		return fail("determinant presence does not match %dx%d shape", r.VectorCount, r.Dimension)
	}
	if len(r.RREF) != r.VectorCount {
		return fail("rref has %d rows, want %d", len(r.RREF), r.VectorCount)
	}
	for i, row := range r.RREF {
		if len(row) != r.Dimension {
			return fail("rref row %d has %d components, want %d", i, len(row), r.Dimension)
		}
	}
	if len(r.BasisVectors) != r.Rank || len(r.BasisIndices) != r.Rank {
		return fail("basis has %d vectors and %d indices, want %d", len(r.BasisVectors), len(r.BasisIndices), r.Rank)
	}
	if (r.DependencyRelation != "") == r.IsLinearlyIndependent {
		return fail("dependency relation presence does not match independence")
	}

	return nil
}
