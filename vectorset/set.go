// SPDX-License-Identifier: MIT

package vectorset

import (
	"fmt"

	"github.com/katalvlaran/vectorspan/matrix"
)

// Bounds and defaults of a Set.
const (
	MinDimension     = 2
	MaxDimension     = 10
	MinVectors       = 2
	MaxVectors       = 10
	DefaultDimension = 3
	DefaultVectors   = 3
)

const (
	opNew           = "New"
	opFromRows      = "FromRows"
	opWithDimension = "WithDimension"
	opAddVector     = "AddVector"
	opRemoveVector  = "RemoveVector"
	opWithComponent = "WithComponent"
	opVector        = "Vector"
	opMatrix        = "Matrix"
)

// Set is an immutable list of equal-length vectors.
// The zero value is not usable; build one with New, FromRows, Example or Default.
type Set struct {
	dim     int
	vectors [][]float64
}

// Default returns DefaultVectors zero vectors of DefaultDimension.
func Default() Set {
	s, _ := New(DefaultDimension) // DefaultDimension is always in range

	return s
}

// New returns DefaultVectors zero vectors of the given dimension.
//
// Errors: ErrDimensionRange.
func New(dim int) (Set, error) {
	if err := checkDimension(dim); err != nil {
		return Set{}, setErrorf(opNew, err)
	}

	return Set{dim: dim, vectors: zeros(DefaultVectors, dim)}, nil
}

// FromRows copies rows into a new Set.
//
// Errors: matrix.ErrEmptyRows, matrix.ErrRaggedRows, ErrDimensionRange, ErrVectorCount.
func FromRows(rows [][]float64) (Set, error) {
	if err := matrix.ValidateRows(rows); err != nil {
		return Set{}, setErrorf(opFromRows, err)
	}
	if err := checkDimension(len(rows[0])); err != nil {
		return Set{}, setErrorf(opFromRows, err)
	}
	if len(rows) < MinVectors || len(rows) > MaxVectors {
		return Set{}, setErrorf(opFromRows, fmt.Errorf("%d vectors: %w", len(rows), ErrVectorCount))
	}

	return Set{dim: len(rows[0]), vectors: copyRows(rows)}, nil
}

// Dimension returns the common length of the vectors.
func (s Set) Dimension() int { return s.dim }

// Len returns the number of vectors.
func (s Set) Len() int { return len(s.vectors) }

// Vector returns a copy of vector i.
func (s Set) Vector(i int) ([]float64, error) {
	if i < 0 || i >= len(s.vectors) {
		return nil, setErrorf(opVector, fmt.Errorf("vector %d: %w", i, ErrIndex))
	}
	out := make([]float64, s.dim)
	copy(out, s.vectors[i])

	return out, nil
}

// Rows returns a deep copy of all vectors.
func (s Set) Rows() [][]float64 { return copyRows(s.vectors) }

// Matrix returns the vectors as rows of a fresh *matrix.Dense.
func (s Set) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(s.vectors, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, setErrorf(opMatrix, err)
	}

	return m, nil
}

// WithDimension resizes every vector to dim: missing components are zero,
// extra components are dropped. Afterwards the set is topped up with zero
// vectors until it holds at least dim+1 of them, never more than MaxVectors.
//
// Errors: ErrDimensionRange.
func (s Set) WithDimension(dim int) (Set, error) {
	if err := checkDimension(dim); err != nil {
		return s, setErrorf(opWithDimension, err)
	}

	out := make([][]float64, len(s.vectors), max(len(s.vectors), min(dim+1, MaxVectors)))
	for i, v := range s.vectors {
		row := make([]float64, dim)
		copy(row, v) // copies min(len(v), dim)
		out[i] = row
	}
	for len(out) < dim+1 && len(out) < MaxVectors {
		out = append(out, make([]float64, dim))
	}

	return Set{dim: dim, vectors: out}, nil
}

// AddVector appends a zero vector.
//
// Errors: ErrTooManyVectors when the set already holds MaxVectors.
func (s Set) AddVector() (Set, error) {
	if len(s.vectors) >= MaxVectors {
		return s, setErrorf(opAddVector, ErrTooManyVectors)
	}
	out := copyRows(s.vectors)

	return Set{dim: s.dim, vectors: append(out, make([]float64, s.dim))}, nil
}

// RemoveVector drops the last vector.
//
// Errors: ErrTooFewVectors when the set holds MinVectors or fewer.
func (s Set) RemoveVector() (Set, error) {
	if len(s.vectors) <= MinVectors {
		return s, setErrorf(opRemoveVector, ErrTooFewVectors)
	}

	return Set{dim: s.dim, vectors: copyRows(s.vectors[:len(s.vectors)-1])}, nil
}

// Clear resets to DefaultVectors zero vectors, keeping the dimension.
func (s Set) Clear() Set {
	return Set{dim: s.dim, vectors: zeros(DefaultVectors, s.dim)}
}

// WithComponent returns a copy with vector i, component j set to v.
//
// Errors: ErrIndex.
func (s Set) WithComponent(i, j int, v float64) (Set, error) {
	if i < 0 || i >= len(s.vectors) || j < 0 || j >= s.dim {
		return s, setErrorf(opWithComponent, fmt.Errorf("(%d,%d): %w", i, j, ErrIndex))
	}
	out := copyRows(s.vectors)
	out[i][j] = v

	return Set{dim: s.dim, vectors: out}, nil
}

func checkDimension(dim int) error {
	if dim < MinDimension || dim > MaxDimension {
		return fmt.Errorf("%d not in [%d,%d]: %w", dim, MinDimension, MaxDimension, ErrDimensionRange)
	}

	return nil
}

func zeros(n, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
	}

	return out
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}
