package report_test

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/katalvlaran/vectorspan/report"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func mustAnalyze(t *testing.T, rows [][]float64, opts ...span.Option) *span.Result {
	t.Helper()
	res, err := span.AnalyzeRows(rows, opts...)
	require.NoError(t, err)

	return res
}

func TestWriteTextDependent(t *testing.T) {
	rows := [][]float64{{1, 2}, {2, 4}, {3, 6}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rows, mustAnalyze(t, rows), stamp))

	want := `Linear Algebra Vector Analysis
Generated: 2024-03-01 12:00:00

Dimension: 2D
Number of vectors: 3

Vectors:
  v1 = (1.0000, 2.0000)
  v2 = (2.0000, 4.0000)
  v3 = (3.0000, 6.0000)

Analysis Results:
  Rank: 1 of 3
  Linear Dependency: Dependent

Reduced Row Echelon Form:
  [1.0000, 2.0000]
  [0.0000, 0.0000]
  [0.0000, 0.0000]

Basis Vectors: v1

Dependency Relation:
  There are 2 linearly dependent vectors that can be expressed as linear combinations of the other 1 vectors.
`
	require.Equal(t, want, buf.String())
}

func TestWriteTextSquare(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rows, mustAnalyze(t, rows, span.WithCoefficients()), stamp))

	out := buf.String()
	require.Contains(t, out, "  Rank: 2 of 2\n  Linear Dependency: Independent\n  Determinant: -1.000000\n")
	require.Contains(t, out, "Basis Vectors: v1, v2\n")
	require.NotContains(t, out, "Dependency Relation")
	require.NotContains(t, out, "Dependency Coefficients")
}

func TestWriteTextCoefficients(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rows, mustAnalyze(t, rows, span.WithCoefficients()), stamp))
	require.Contains(t, buf.String(), "\nDependency Coefficients:\n  c1 = (-1.0000, -1.0000, 1.0000)\n")
}

func TestWriteTextNegativeZero(t *testing.T) {
	res := &span.Result{
		Dimension:   2,
		VectorCount: 2,
		Rank:        0,
		RREF:        [][]float64{{-1e-12, 0}, {0, -0.00004}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, [][]float64{{-0.00001, 0}, {0, 0}}, res, stamp))
	require.NotContains(t, buf.String(), "-0.0000")
}

func TestWriteSummary(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, rows, mustAnalyze(t, rows)))

	want := `Linear Algebra Vector Analysis
Dimension: 2D
Vectors: v1=(1.00,0.00), v2=(0.00,1.00)
Rank: 2/2
Status: Independent
Determinant: 1.0000
`
	require.Equal(t, want, buf.String())
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWritersErrors(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	res := mustAnalyze(t, rows)

	require.ErrorIs(t, report.WriteText(&bytes.Buffer{}, rows, nil, stamp), report.ErrNilResult)
	require.ErrorIs(t, report.WriteSummary(&bytes.Buffer{}, rows, nil), report.ErrNilResult)
	require.ErrorIs(t, report.WriteText(failingWriter{}, rows, res, stamp), errSink)
	require.ErrorIs(t, report.WriteSummary(failingWriter{}, rows, res), errSink)
}

func TestWriteTextHugeDeterminant(t *testing.T) {
	rows := [][]float64{{1e303, 0}, {0, 1}}
	res := mustAnalyze(t, rows)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rows, res, stamp))
	require.NotContains(t, buf.String(), "Inf")
	require.Contains(t, buf.String(), "  Determinant: "+strconv.FormatFloat(1e303, 'f', 6, 64)+"\n")

	buf.Reset()
	require.NoError(t, report.WriteSummary(&buf, rows, res))
	require.NotContains(t, buf.String(), "Inf")
	require.Contains(t, buf.String(), "Determinant: "+strconv.FormatFloat(1e303, 'f', 4, 64)+"\n")
}
