// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNilResult is returned when a writer receives a nil *span.Result.
	ErrNilResult = errors.New("report: nil result")

	// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
	ErrUnknownFormat = errors.New("report: unknown format")
)

func reportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
