// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// In this module a Matrix is always read as "one input vector per row".
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (input vectors).
	Rows() int

	// Cols returns the number of columns (vector dimension).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
