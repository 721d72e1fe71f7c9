// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
	"time"
)

// Format selects a report encoding.
type Format string

// Supported formats.
const (
	FormatText    Format = "text"
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
// "yml" and "txt" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "summary":
		return FormatSummary, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", reportErrorf("ParseFormat", fmt.Errorf("%q: %w", s, ErrUnknownFormat))
}

// Ext returns the file extension used for f.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "txt"
	}
}

// Filename returns the export name "vector-analysis-<dim>D-<unix millis>.<ext>".
func Filename(dim int, at time.Time, ext string) string {
	return fmt.Sprintf("vector-analysis-%dD-%d.%s", dim, at.UnixMilli(), ext)
}
