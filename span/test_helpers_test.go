// SPDX-License-Identifier: MIT
// Package span_test contains shared fixtures for the engine tests.

package span_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *Dense type to force interface fallbacks.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireRowsClose compares two row lists element-wise within tol.
func RequireRowsClose(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], got[i][j], tol, "element [%d,%d]", i, j)
		}
	}
}

// RandomIntRows returns r×c rows with integer entries in [-3, 3].
// Small integers keep elimination residues far below Epsilon.
func RandomIntRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(7) - 3)
		}
	}

	return rows
}

// fixture is a named vector set used across kernel tests.
type fixture struct {
	name string
	rows [][]float64
}

// scenarios are the reference vector sets; expectations live next to each test.
var (
	scenarioDependent2D  = [][]float64{{1, 2}, {2, 4}, {3, 6}}
	scenarioIdentity2D   = [][]float64{{1, 0}, {0, 1}}
	scenarioIdentity3D   = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	scenarioZero2D       = [][]float64{{0, 0}, {0, 0}}
	scenarioMultiples4D  = [][]float64{{1, 2, 3, 4}, {2, 4, 6, 8}, {3, 6, 9, 12}}
	scenarioSingular3D   = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	scenarioSwapped2D    = [][]float64{{0, 1}, {1, 0}}
	scenarioTridiagonal3 = [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
)
