package span_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/stretchr/testify/require"
)

func TestDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fixture
		want [][]float64
	}{
		{fixture{"independent", scenarioIdentity3D}, [][]float64{}},
		{fixture{"multiples", scenarioDependent2D}, [][]float64{{-2, 1, 0}, {-3, 0, 1}}},
		{fixture{"sum", [][]float64{{1, 0}, {0, 1}, {1, 1}}}, [][]float64{{-1, -1, 1}}},
		{fixture{"all zero", scenarioZero2D}, [][]float64{{1, 0}, {0, 1}}},
		{fixture{"singular 3x3", scenarioSingular3D}, [][]float64{{1, -2, 1}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := span.Dependencies(MustFromRows(t, tc.rows))
			require.NoError(t, err)
			RequireRowsClose(t, tc.want, got, 1e-9)
		})
	}
}

// TestDependenciesAnnihilate checks Σ cᵢ·vᵢ ≈ 0 and the count rows-rank on random sets.
func TestDependenciesAnnihilate(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for trial := 0; trial < 200; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(5)
		m := MustFromRows(t, RandomIntRows(rng, r, c))

		deps, err := span.Dependencies(m)
		require.NoError(t, err)
		rank, err := span.Rank(m)
		require.NoError(t, err)
		require.Lenf(t, deps, r-rank, "trial %d", trial)

		tr, err := matrix.Transpose(m)
		require.NoError(t, err)
		for _, coeffs := range deps {
			y, err := matrix.MatVec(tr, coeffs)
			require.NoError(t, err)
			for _, v := range y {
				require.InDeltaf(t, 0.0, v, 1e-8, "trial %d coeffs %v", trial, coeffs)
			}
		}
	}
}

func TestDependenciesErrors(t *testing.T) {
	_, err := span.Dependencies(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = span.Dependencies(emptyMatrix{})
	require.ErrorIs(t, err, span.ErrEmptyMatrix)
	require.ErrorIs(t, err, matrix.ErrEmptyRows)

	var typedNil *matrix.Dense
	_, err = span.Dependencies(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
