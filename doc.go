// Package vectorspan analyzes finite sets of real vectors: rank, linear
// independence, determinant, reduced row echelon form, basis vectors and
// the dependency relation between them.
//
// 🚀 What is vectorspan?
//
//	A small, deterministic linear algebra toolkit built around one engine:
//		• Matrix primitives: row-major Dense storage, validators, transpose, MatVec
//		• Engine: Rank, Determinant, RREF, BasisVectors, DependencyRelation
//		• Coefficients: explicit dependency combinations (left null space)
//		• Batches: many vector sets analyzed concurrently with one call
//		• Hosts: an immutable editable vector set, reports and a CLI
//
// Everything is organized under these subpackages:
//
//	matrix/           — Matrix interface, Dense type, sentinel errors & validators
//	span/             — the analysis engine (single tolerance span.Epsilon = 1e-10)
//	vectorset/        — bounded vector sets: presets, random fill, YAML/JSON input
//	report/           — text, summary, JSON and YAML renderings of a result
//	cmd/vectorcheck/  — command-line front end
//
// Quick example:
//
//	res, err := span.AnalyzeRows([][]float64{{1, 2}, {2, 4}, {3, 6}})
//	// res.Rank == 1, res.IsLinearlyIndependent == false
//	// res.BasisVectors == [[1 2]]
//
// Kernels never mutate their input and never round; rounding is a
// presentation concern handled by report.
//
//	go get github.com/katalvlaran/vectorspan
package vectorspan
