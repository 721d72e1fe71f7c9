package span_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatch(t *testing.T) {
	sets := [][][]float64{
		scenarioDependent2D,
		scenarioIdentity2D,
		scenarioIdentity3D,
		scenarioZero2D,
		scenarioMultiples4D,
		scenarioSingular3D,
	}
	ms := make([]matrix.Matrix, len(sets))
	for i, rows := range sets {
		ms[i] = MustFromRows(t, rows)
	}

	for _, n := range []int{1, 2, 8} {
		got, err := span.AnalyzeBatch(context.Background(), ms, span.WithConcurrency(n))
		require.NoError(t, err)
		require.Len(t, got, len(ms))

		for i, m := range ms {
			want, err := span.Analyze(m)
			require.NoError(t, err)
			require.Equalf(t, want, got[i], "concurrency %d, set %d", n, i)
		}
	}
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	got, err := span.AnalyzeBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAnalyzeBatchError(t *testing.T) {
	ms := []matrix.Matrix{MustFromRows(t, scenarioIdentity2D), nil}

	_, err := span.AnalyzeBatch(context.Background(), ms)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorContains(t, err, "matrix 1")
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := span.AnalyzeBatch(ctx, []matrix.Matrix{MustFromRows(t, scenarioIdentity2D)})
	require.ErrorIs(t, err, context.Canceled)
}
