// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Bridge [][]float64 "list of vectors" input to Dense and back, always by copy.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - NewFromRows copies; mutating the caller's slices afterwards never affects the Dense.
//   - ToRows copies; the span kernels eliminate on that private copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/ToRows/NewFromRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag for NewFromRows
	ctxToRows   = "ToRows"      // tag for ToRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps a stable "Dense.<method>(row,col): <sentinel>" shape; preserves the
// sentinel via %w. Time O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a Dense whose row i is a copy of rows[i].
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: resolve numeric policy; reject NaN/±Inf when enabled.
//   - Stage 3: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - The caller's slices are never retained.
//
// Errors:
//   - ErrEmptyRows, ErrRaggedRows (shape), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToRows copies any Matrix into a fresh [][]float64, one slice per row.
// The result never aliases m's storage; kernels are free to mutate it.
//
// Errors:
//   - ErrNilMatrix; accessor errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToRows, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)

	// Fast path: slice straight out of the flat buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			row := make([]float64, c)
			copy(row, d.data[i*c:(i+1)*c])
			out[i] = row
		}

		return out, nil
	}

	// Fallback: interface path with fixed i→j order.
	var err error
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			if row[j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxToRows, err)
			}
		}
		out[i] = row
	}

	return out, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; At/Set wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders rows as "[a, b, c]" lines using %g; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
