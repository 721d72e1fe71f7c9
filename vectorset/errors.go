// SPDX-License-Identifier: MIT

package vectorset

import (
	"errors"
	"fmt"
)

// Sentinel errors for vector set construction, editing and validation.
var (
	// ErrDimensionRange is returned when a dimension is outside [MinDimension, MaxDimension].
	ErrDimensionRange = errors.New("vectorset: dimension out of range")

	// ErrVectorCount is returned when a vector count is outside [MinVectors, MaxVectors].
	ErrVectorCount = errors.New("vectorset: vector count out of range")

	// ErrTooManyVectors is returned by AddVector on a full set.
	ErrTooManyVectors = errors.New("vectorset: maximum number of vectors reached")

	// ErrTooFewVectors is returned by RemoveVector on a minimal set.
	ErrTooFewVectors = errors.New("vectorset: minimum number of vectors reached")

	// ErrIndex is returned for an out-of-range vector or component index.
	ErrIndex = errors.New("vectorset: index out of range")

	// ErrUnknownExample is returned by Example for an unregistered preset name.
	ErrUnknownExample = errors.New("vectorset: unknown example")

	// ErrNonFinite is returned by Validate when a component is NaN or ±Inf.
	ErrNonFinite = errors.New("vectorset: non-finite component")

	// ErrAllZero is returned by Validate when no vector has a non-zero component.
	ErrAllZero = errors.New("vectorset: all vectors are zero")

	// ErrDecode is returned when serialized input cannot be read as a list of vectors.
	ErrDecode = errors.New("vectorset: cannot decode vectors")
)

// setErrorf tags err with the operation name: "Op: err".
func setErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
