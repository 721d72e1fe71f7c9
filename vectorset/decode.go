// SPDX-License-Identifier: MIT

package vectorset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const opDecode = "Decode"

// document is the keyed input form: {"vectors": [[...], ...]}.
type document struct {
	Vectors [][]float64 `yaml:"vectors"`
}

// Decode reads a Set from YAML or JSON (JSON is valid YAML).
// Two shapes are accepted: a bare list of vectors, or a mapping with a
// "vectors" key such as the one report.WriteJSON produces.
//
// Errors: ErrDecode, plus every FromRows error.
func Decode(r io.Reader) (Set, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return Set{}, setErrorf(opDecode, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Set{}, setErrorf(opDecode, fmt.Errorf("%w: empty document", ErrDecode))
	}

	var rows [][]float64
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&rows); err != nil {
			return Set{}, setErrorf(opDecode, fmt.Errorf("%w: %v", ErrDecode, err))
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return Set{}, setErrorf(opDecode, fmt.Errorf("%w: %v", ErrDecode, err))
		}
		rows = doc.Vectors
	default:
		return Set{}, setErrorf(opDecode, fmt.Errorf("%w: want a list of vectors or a mapping", ErrDecode))
	}

	s, err := FromRows(rows)
	if err != nil {
		return Set{}, setErrorf(opDecode, err)
	}

	return s, nil
}
