// SPDX-License-Identifier: MIT

// Package report renders a span.Result for people and for other programs.
//
// Formats:
//   - FormatText: the full export (vectors, rank, status, determinant, RREF,
//     dependency relation) with 4-decimal vectors and a 6-decimal determinant;
//   - FormatSummary: the compact few-line form with 2-decimal vectors;
//   - FormatJSON, FormatYAML: a Document with every number rounded to a
//     fixed precision.
//
// The engine never rounds. Rounding happens here only, and a rounded
// negative zero is always printed as zero.
package report
