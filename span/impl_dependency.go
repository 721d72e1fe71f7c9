// SPDX-License-Identifier: MIT

package span

import (
	"fmt"

	"github.com/katalvlaran/vectorspan/matrix"
)

// IndependentRelation is the text DependencyRelation returns for an independent set.
const IndependentRelation = "Vectors are linearly independent (no dependency relation)."

// DependencyRelation summarizes, in words, how many vectors of m are redundant.
// No coefficients are computed here; see Dependencies for those.
//
//   - rank == rows: IndependentRelation.
//   - rows-rank == 1: singular sentence naming the other rank vectors.
//   - otherwise: plural sentence with the dependent count.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix.
func DependencyRelation(m matrix.Matrix) (string, error) {
	a, err := workingCopy(opDependency, m)
	if err != nil {
		return "", err
	}
	rank := rankInPlace(a)

	return describeDependency(len(a), rank), nil
}

// describeDependency renders the relation for n vectors of the given rank.
func describeDependency(n, rank int) string {
	if rank == n {
		return IndependentRelation
	}
	dependent := n - rank
	if dependent == 1 {
		return fmt.Sprintf("There is 1 linearly dependent vector that can be expressed as a linear combination of the other %d vectors.", rank)
	}

	return fmt.Sprintf("There are %d linearly dependent vectors that can be expressed as linear combinations of the other %d vectors.", dependent, rank)
}
