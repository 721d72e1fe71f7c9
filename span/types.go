// SPDX-License-Identifier: MIT

package span

// Epsilon is the zero tolerance shared by every kernel in this package.
// A value v is treated as zero when |v| <= Epsilon.
const Epsilon = 1e-10

// Operation tags for error wrapping.
const (
	opRank           = "Rank"
	opDeterminant    = "Determinant"
	opRREF           = "RREF"
	opBasis          = "BasisVectors"
	opDependency     = "DependencyRelation"
	opDependencies   = "Dependencies"
	opAnalyze        = "Analyze"
	opAnalyzeBatch   = "AnalyzeBatch"
	opAnalyzeRows    = "AnalyzeRows"
	opValidateResult = "Result.Validate"
)

// Result is the aggregate answer for one vector set.
//
// Invariants (checked by Validate):
//   - 0 <= Rank <= min(VectorCount, Dimension)
//   - IsLinearlyIndependent == (Rank == VectorCount)
//   - Determinant != nil iff VectorCount == Dimension
//   - len(BasisVectors) == len(BasisIndices) == Rank
//   - DependencyRelation != "" iff !IsLinearlyIndependent
type Result struct {
	// Dimension is the number of components per vector.
	Dimension int `json:"dimension"`
	// VectorCount is the number of input vectors.
	VectorCount int `json:"vectorCount"`
	// Rank is the dimension of the span.
	Rank int `json:"rank"`
	// IsLinearlyIndependent is Rank == VectorCount.
	IsLinearlyIndependent bool `json:"isLinearlyIndependent"`
	// Determinant is set only for square input.
	Determinant *float64 `json:"determinant,omitempty"`
	// RREF has the same shape as the input.
	RREF [][]float64 `json:"rref"`
	// BasisVectors are copies of input vectors, not RREF rows.
	BasisVectors [][]float64 `json:"basisVectors"`
	// BasisIndices holds the input row index of each basis vector.
	BasisIndices []int `json:"basisIndices"`
	// DependencyRelation is set only when the vectors are dependent.
	DependencyRelation string `json:"dependencyRelation,omitempty"`
	// Dependencies is filled only with WithCoefficients.
	Dependencies [][]float64 `json:"dependencies,omitempty"`
}

// IsSquare reports whether the analyzed matrix was square.
func (r *Result) IsSquare() bool { return r.VectorCount == r.Dimension }

// DependentCount is the number of vectors beyond the rank.
func (r *Result) DependentCount() int { return r.VectorCount - r.Rank }
