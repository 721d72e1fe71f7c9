// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// CompareExact asserts every element of got equals want bit-for-bit.
func CompareExact(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, got, i, j), "element [%d,%d]", i, j)
		}
	}
}
