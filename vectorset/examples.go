// SPDX-License-Identifier: MIT

package vectorset

import (
	"fmt"
	"slices"
)

const opExample = "Example"

// presets are the built-in demonstration sets, keyed by name.
// The "-dependent" sets are multiples of one vector.
var presets = map[string][][]float64{
	"2D-dependent":   {{1, 2}, {2, 4}, {3, 6}},
	"2D-independent": {{1, 0}, {0, 1}, {1, 1}},
	"3D-dependent":   {{1, 2, 3}, {2, 4, 6}, {3, 6, 9}},
	"3D-independent": {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	"4D-dependent":   {{1, 2, 3, 4}, {2, 4, 6, 8}, {3, 6, 9, 12}},
	"4D-independent": {{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
}

// Example returns the preset registered under name.
// Note that "2D-independent" holds three plane vectors and is in fact dependent;
// the name describes the two basis vectors it starts with.
//
// Errors: ErrUnknownExample.
func Example(name string) (Set, error) {
	rows, ok := presets[name]
	if !ok {
		return Set{}, setErrorf(opExample, fmt.Errorf("%q: %w", name, ErrUnknownExample))
	}

	return Set{dim: len(rows[0]), vectors: copyRows(rows)}, nil
}

// ExampleNames lists the preset names in sorted order.
func ExampleNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
