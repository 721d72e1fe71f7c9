package span_test

import (
	"testing"

	"github.com/katalvlaran/vectorspan/span"
	"github.com/stretchr/testify/require"
)

func TestWithConcurrencyPanics(t *testing.T) {
	require.Panics(t, func() { span.WithConcurrency(0) })
	require.NotPanics(t, func() { span.WithConcurrency(1) })
}

func TestWithNilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		_, err := span.AnalyzeRows(scenarioIdentity2D, span.WithLogger(nil))
		require.NoError(t, err)
	})
}
