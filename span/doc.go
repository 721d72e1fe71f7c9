// SPDX-License-Identifier: MIT

// Package span is the linear-algebra engine behind vectorspan.
//
// A set of vectors is handed in as a matrix.Matrix whose rows are the vectors
// in input order. The package answers the classic questions about that set:
//
//	Rank               — Gaussian elimination, pivot count
//	Determinant        — partial-pivoting elimination, square input only
//	RREF               — Gauss-Jordan reduced row echelon form
//	BasisVectors       — input vectors picked through the RREF pivot columns
//	DependencyRelation — textual summary of how many vectors are redundant
//	Dependencies       — explicit coefficient vectors c with Σ cᵢ·vᵢ = 0
//	Analyze            — all of the above in one Result
//	AnalyzeBatch       — many independent sets, bounded concurrency
//
// Numeric policy:
//
//	Every comparison against zero uses the single constant Epsilon (1e-10):
//	|x| > Epsilon is "nonzero", anything else is treated as exact zero.
//	Rank, RREF and Determinant share that value so their answers agree
//	(e.g. det == 0 exactly when rank < n).
//
// Purity:
//
//	Every kernel copies its argument before eliminating and returns fresh
//	values. Nothing in this package holds state between calls, so concurrent
//	calls on distinct matrices need no coordination.
//
// Determinant and RREF deliberately run separate elimination passes: the RREF
// pass divides pivot rows (which would scale a determinant), the determinant
// pass never does.
package span
