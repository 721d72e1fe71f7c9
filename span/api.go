// SPDX-License-Identifier: MIT
// Package span - aggregate entry points.
//
// Determinism & Policy:
//   - Analyze runs every kernel on the SAME original matrix; no kernel sees
//     another kernel's intermediate state.
//   - Determinant is requested only for square input, so Analyze never hits
//     the ErrNonSquare contract error.

package span

import (
	"github.com/katalvlaran/vectorspan/matrix"
)

// Analyze computes the full Result for the vectors held as rows of m.
//
// Order: rank → independence → determinant (square only) → RREF → basis →
// dependency relation (dependent only) → coefficients (WithCoefficients only).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyMatrix; accessor errors from custom Matrix types.
//
// AI-Hints:
//   - Hosts should reject all-zero / non-finite input before calling
//     (vectorset.Set.Validate); Analyze itself tolerates all-zero input.
func Analyze(m matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	original, err := workingCopy(opAnalyze, m)
	if err != nil {
		return nil, err
	}
	rows, cols := len(original), len(original[0])

	res := &Result{
		Dimension:   cols,
		VectorCount: rows,
	}

	if res.Rank, err = Rank(m); err != nil {
		return nil, spanErrorf(opAnalyze, err)
	}
	res.IsLinearlyIndependent = res.Rank == rows

	if rows == cols {
		det, err := Determinant(m)
		if err != nil {
			return nil, spanErrorf(opAnalyze, err)
		}
		res.Determinant = &det
	}

	reduced, err := RREF(m)
	if err != nil {
		return nil, spanErrorf(opAnalyze, err)
	}
	if res.RREF, err = matrix.ToRows(reduced); err != nil {
		return nil, spanErrorf(opAnalyze, err)
	}

	if res.BasisIndices, err = BasisIndices(m); err != nil {
		return nil, spanErrorf(opAnalyze, err)
	}
	res.BasisVectors = pickRows(original, res.BasisIndices)

	if !res.IsLinearlyIndependent {
		if res.DependencyRelation, err = DependencyRelation(m); err != nil {
			return nil, spanErrorf(opAnalyze, err)
		}
	}

	if o.coefficients {
		if res.Dependencies, err = Dependencies(m); err != nil {
			return nil, spanErrorf(opAnalyze, err)
		}
	}

	o.logger.Debug("analysis completed",
		"dimension", res.Dimension,
		"vectors", res.VectorCount,
		"rank", res.Rank,
		"independent", res.IsLinearlyIndependent,
	)

	return res, nil
}

// AnalyzeRows is Analyze for a plain list of vectors.
// The rows are copied; ragged or empty input fails fast.
//
// Errors:
//   - matrix.ErrEmptyRows, matrix.ErrRaggedRows, matrix.ErrNaNInf.
func AnalyzeRows(rows [][]float64, opts ...Option) (*Result, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, spanErrorf(opAnalyzeRows, err)
	}

	return Analyze(m, opts...)
}
