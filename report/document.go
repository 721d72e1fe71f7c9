// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vectorspan/span"
)

// Document is the structured form of one analysis.
// Determinant is null for non-square input; Dependencies appears only when
// coefficients were requested.
type Document struct {
	Dimension             int         `json:"dimension" yaml:"dimension"`
	Vectors               [][]float64 `json:"vectors" yaml:"vectors"`
	Rank                  int         `json:"rank" yaml:"rank"`
	IsLinearlyIndependent bool        `json:"isLinearlyIndependent" yaml:"isLinearlyIndependent"`
	Determinant           *float64    `json:"determinant" yaml:"determinant"`
	RREF                  [][]float64 `json:"rref" yaml:"rref"`
	BasisVectors          [][]float64 `json:"basisVectors" yaml:"basisVectors"`
	BasisIndices          []int       `json:"basisIndices" yaml:"basisIndices"`
	DependencyRelation    string      `json:"dependencyRelation,omitempty" yaml:"dependencyRelation,omitempty"`
	Dependencies          [][]float64 `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// NewDocument copies res into a Document, rounding every number to
// precision decimals (clamped to [MinPrecision, MaxPrecision]).
//
// Errors: ErrNilResult.
func NewDocument(vectors [][]float64, res *span.Result, precision int) (*Document, error) {
	if res == nil {
		return nil, reportErrorf("NewDocument", ErrNilResult)
	}
	p := clampPrecision(precision)

	doc := &Document{
		Dimension:             res.Dimension,
		Vectors:               roundRows(vectors, p),
		Rank:                  res.Rank,
		IsLinearlyIndependent: res.IsLinearlyIndependent,
		RREF:                  roundRows(res.RREF, p),
		BasisVectors:          roundRows(res.BasisVectors, p),
		BasisIndices:          append([]int{}, res.BasisIndices...),
		DependencyRelation:    res.DependencyRelation,
		Dependencies:          roundRows(res.Dependencies, p),
	}
	if doc.BasisVectors == nil {
		doc.BasisVectors = [][]float64{}
	}
	if res.Determinant != nil {
		d := round(*res.Determinant, p)
		doc.Determinant = &d
	}

	return doc, nil
}

// WriteJSON writes the Document for res as indented JSON.
func WriteJSON(w io.Writer, vectors [][]float64, res *span.Result, precision int) error {
	doc, err := NewDocument(vectors, res, precision)
	if err != nil {
		return reportErrorf("WriteJSON", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return reportErrorf("WriteJSON", err)
	}

	return nil
}

// WriteYAML writes the Document for res as YAML.
func WriteYAML(w io.Writer, vectors [][]float64, res *span.Result, precision int) error {
	doc, err := NewDocument(vectors, res, precision)
	if err != nil {
		return reportErrorf("WriteYAML", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return reportErrorf("WriteYAML", err)
	}
	if err = enc.Close(); err != nil {
		return reportErrorf("WriteYAML", err)
	}

	return nil
}

// Write dispatches to the writer for f. generatedAt is used by FormatText only.
//
// Errors: ErrUnknownFormat for an unsupported f, plus the writer's errors.
func Write(w io.Writer, f Format, vectors [][]float64, res *span.Result, precision int, generatedAt time.Time) error {
	switch f {
	case FormatText:
		return WriteText(w, vectors, res, generatedAt)
	case FormatSummary:
		return WriteSummary(w, vectors, res)
	case FormatJSON:
		return WriteJSON(w, vectors, res, precision)
	case FormatYAML:
		return WriteYAML(w, vectors, res, precision)
	}

	return reportErrorf("Write", ErrUnknownFormat)
}
