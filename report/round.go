// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"strconv"
	"strings"
)

// Precision bounds for the structured encodings.
const (
	MinPrecision     = 4
	MaxPrecision     = 6
	DefaultPrecision = 6
)

// clampPrecision maps p into [MinPrecision, MaxPrecision]; p <= 0 means DefaultPrecision.
func clampPrecision(p int) int {
	switch {
	case p <= 0:
		return DefaultPrecision
	case p < MinPrecision:
		return MinPrecision
	case p > MaxPrecision:
		return MaxPrecision
	}

	return p
}

// integralMagnitude is where float64 stops carrying any fractional digit
// worth rounding at MaxPrecision decimals.
const integralMagnitude = 1e15

// round rounds v half away from zero to p decimals; -0 becomes 0.
// Values of magnitude >= integralMagnitude, and values whose scaled form
// would overflow, are returned unchanged.
func round(v float64, p int) float64 {
	scale := math.Pow(10, float64(p))
	if math.Abs(v) >= integralMagnitude || math.IsInf(v*scale, 0) {
		return v
	}
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}

	return r
}

func roundVec(v []float64, p int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = round(x, p)
	}

	return out
}

func roundRows(rows [][]float64, p int) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = roundVec(r, p)
	}

	return out
}

// fixed formats v with exactly p decimals, never as "-0.00…".
func fixed(v float64, p int) string {
	return strconv.FormatFloat(round(v, p), 'f', p, 64)
}

// joinFixed formats every component with p decimals, separated by sep.
func joinFixed(v []float64, p int, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fixed(x, p)
	}

	return strings.Join(parts, sep)
}
