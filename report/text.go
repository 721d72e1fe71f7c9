// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/vectorspan/span"
)

const (
	textTitle        = "Linear Algebra Vector Analysis"
	vectorDecimals   = 4
	detDecimals      = 6
	summaryDecimals  = 2
	summaryDetDigits = 4
)

// WriteText writes the full export layout for vectors and their analysis.
// generatedAt is printed verbatim in the header so output stays reproducible.
//
// Errors: ErrNilResult, write errors from w.
func WriteText(w io.Writer, vectors [][]float64, res *span.Result, generatedAt time.Time) error {
	if res == nil {
		return reportErrorf("WriteText", ErrNilResult)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", textTitle)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.DateTime))
	fmt.Fprintf(&b, "Dimension: %dD\n", res.Dimension)
	fmt.Fprintf(&b, "Number of vectors: %d\n\n", len(vectors))

	b.WriteString("Vectors:\n")
	for i, v := range vectors {
		fmt.Fprintf(&b, "  v%d = (%s)\n", i+1, joinFixed(v, vectorDecimals, ", "))
	}

	b.WriteString("\nAnalysis Results:\n")
	fmt.Fprintf(&b, "  Rank: %d of %d\n", res.Rank, len(vectors))
	fmt.Fprintf(&b, "  Linear Dependency: %s\n", status(res))
	if res.Determinant != nil {
		fmt.Fprintf(&b, "  Determinant: %s\n", fixed(*res.Determinant, detDecimals))
	}

	b.WriteString("\nReduced Row Echelon Form:\n")
	for _, row := range res.RREF {
		fmt.Fprintf(&b, "  [%s]\n", joinFixed(row, vectorDecimals, ", "))
	}

	if len(res.BasisIndices) > 0 {
		labels := make([]string, len(res.BasisIndices))
		for i, idx := range res.BasisIndices {
			labels[i] = fmt.Sprintf("v%d", idx+1)
		}
		fmt.Fprintf(&b, "\nBasis Vectors: %s\n", strings.Join(labels, ", "))
	}

	if res.DependencyRelation != "" {
		fmt.Fprintf(&b, "\nDependency Relation:\n  %s\n", res.DependencyRelation)
	}
	if len(res.Dependencies) > 0 {
		b.WriteString("\nDependency Coefficients:\n")
		for i, c := range res.Dependencies {
			fmt.Fprintf(&b, "  c%d = (%s)\n", i+1, joinFixed(c, vectorDecimals, ", "))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return reportErrorf("WriteText", err)
	}

	return nil
}

// WriteSummary writes the compact form meant for pasting into chat or notes.
//
// Errors: ErrNilResult, write errors from w.
func WriteSummary(w io.Writer, vectors [][]float64, res *span.Result) error {
	if res == nil {
		return reportErrorf("WriteSummary", ErrNilResult)
	}

	parts := make([]string, len(vectors))
	for i, v := range vectors {
		parts[i] = fmt.Sprintf("v%d=(%s)", i+1, joinFixed(v, summaryDecimals, ","))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", textTitle)
	fmt.Fprintf(&b, "Dimension: %dD\n", res.Dimension)
	fmt.Fprintf(&b, "Vectors: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(&b, "Rank: %d/%d\n", res.Rank, len(vectors))
	fmt.Fprintf(&b, "Status: %s\n", status(res))
	if res.Determinant != nil {
		fmt.Fprintf(&b, "Determinant: %s\n", fixed(*res.Determinant, summaryDetDigits))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return reportErrorf("WriteSummary", err)
	}

	return nil
}

func status(res *span.Result) string {
	if res.IsLinearlyIndependent {
		return "Independent"
	}

	return "Dependent"
}
