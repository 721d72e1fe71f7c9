package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vectorspan/report"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/katalvlaran/vectorspan/vectorset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thirds() *span.Result {
	det := 1.0 / 3.0
	return &span.Result{
		Dimension:             2,
		VectorCount:           2,
		Rank:                  2,
		IsLinearlyIndependent: true,
		Determinant:           &det,
		RREF:                  [][]float64{{1, 0}, {0, 1}},
		BasisVectors:          [][]float64{{1.0 / 3.0, 0}, {0, 1}},
		BasisIndices:          []int{0, 1},
	}
}

func TestNewDocumentPrecision(t *testing.T) {
	vectors := [][]float64{{1.0 / 3.0, 0}, {0, 1}}

	tests := []struct {
		precision int
		want      float64
	}{
		{0, 0.333333},
		{2, 0.3333},
		{4, 0.3333},
		{5, 0.33333},
		{6, 0.333333},
		{9, 0.333333},
	}
	for _, tc := range tests {
		doc, err := report.NewDocument(vectors, thirds(), tc.precision)
		require.NoError(t, err)
		require.NotNil(t, doc.Determinant)
		assert.Equalf(t, tc.want, *doc.Determinant, "precision %d", tc.precision)
		assert.Equalf(t, tc.want, doc.Vectors[0][0], "precision %d", tc.precision)
		assert.Equalf(t, tc.want, doc.BasisVectors[0][0], "precision %d", tc.precision)
	}

	_, err := report.NewDocument(vectors, nil, 6)
	require.ErrorIs(t, err, report.ErrNilResult)
}

func TestWriteJSON(t *testing.T) {
	rows := [][]float64{{1, 2}, {2, 4}, {3, 6}}
	res, err := span.AnalyzeRows(rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, rows, res, 6))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 2, got["dimension"])
	assert.EqualValues(t, 1, got["rank"])
	assert.Equal(t, false, got["isLinearlyIndependent"])
	assert.Contains(t, got, "determinant")
	assert.Nil(t, got["determinant"])
	assert.Equal(t, res.DependencyRelation, got["dependencyRelation"])
	assert.NotContains(t, got, "dependencies")

	s, err := vectorset.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, rows, s.Rows())
}

func TestWriteYAML(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	res, err := span.AnalyzeRows(rows, span.WithCoefficients())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, rows, res, 4))

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Dimension)
	assert.Equal(t, 2, doc.Rank)
	assert.Nil(t, doc.Determinant)
	assert.Equal(t, rows, doc.Vectors)
	assert.Equal(t, []int{0, 1}, doc.BasisIndices)
	assert.Equal(t, [][]float64{{-1, -1, 1}}, doc.Dependencies)

	s, err := vectorset.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, rows, s.Rows())
}

func TestWriteDispatch(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	res, err := span.AnalyzeRows(rows)
	require.NoError(t, err)

	for _, f := range []report.Format{report.FormatText, report.FormatSummary, report.FormatJSON, report.FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, f, rows, res, 6, stamp), f)
		require.NotEmpty(t, buf.String(), f)
	}
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, report.Format("xml"), rows, res, 6, stamp), report.ErrUnknownFormat)
}

// TestHugeDeterminant keeps finite values finite through rounding.
func TestHugeDeterminant(t *testing.T) {
	rows := [][]float64{{1e303, 0}, {0, 1}}
	res, err := span.AnalyzeRows(rows)
	require.NoError(t, err)
	require.NotNil(t, res.Determinant)
	require.Equal(t, 1e303, *res.Determinant)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, rows, res, 6))
	var doc report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.NotNil(t, doc.Determinant)
	assert.Equal(t, 1e303, *doc.Determinant)
	assert.Equal(t, 1e303, doc.Vectors[0][0])

	buf.Reset()
	require.NoError(t, report.WriteYAML(&buf, rows, res, 4))
	assert.NotContains(t, buf.String(), "inf")

	for _, p := range []int{4, 5, 6} {
		doc, err := report.NewDocument([][]float64{{-3.5e300, 1e15}, {2.5e15, 1}}, res, p)
		require.NoError(t, err)
		assert.Equal(t, []float64{-3.5e300, 1e15}, doc.Vectors[0])
		assert.Equal(t, []float64{2.5e15, 1}, doc.Vectors[1])
	}
}
