package vectorset_test

import (
	"testing"

	"github.com/katalvlaran/vectorspan/span"
	"github.com/katalvlaran/vectorspan/vectorset"
	"github.com/stretchr/testify/require"
)

func TestExampleNames(t *testing.T) {
	require.Equal(t, []string{
		"2D-dependent",
		"2D-independent",
		"3D-dependent",
		"3D-independent",
		"4D-dependent",
		"4D-independent",
	}, vectorset.ExampleNames())
}

func TestExamples(t *testing.T) {
	tests := []struct {
		name        string
		dim, count  int
		rank        int
		independent bool
	}{
		{"2D-dependent", 2, 3, 1, false},
		{"2D-independent", 2, 3, 2, false},
		{"3D-dependent", 3, 3, 1, false},
		{"3D-independent", 3, 3, 3, true},
		{"4D-dependent", 4, 3, 1, false},
		{"4D-independent", 4, 4, 4, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := vectorset.Example(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.dim, s.Dimension())
			require.Equal(t, tc.count, s.Len())
			require.NoError(t, s.Validate())

			m, err := s.Matrix()
			require.NoError(t, err)
			res, err := span.Analyze(m)
			require.NoError(t, err)
			require.Equal(t, tc.rank, res.Rank)
			require.Equal(t, tc.independent, res.IsLinearlyIndependent)
		})
	}

	_, err := vectorset.Example("5D-anything")
	require.ErrorIs(t, err, vectorset.ErrUnknownExample)
}

// TestExampleIsolation guards the preset table against edits through a Set.
func TestExampleIsolation(t *testing.T) {
	s, err := vectorset.Example("2D-dependent")
	require.NoError(t, err)
	_, err = s.WithComponent(0, 0, 42)
	require.NoError(t, err)

	again, err := vectorset.Example("2D-dependent")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}, again.Rows())
}
