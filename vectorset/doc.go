// SPDX-License-Identifier: MIT

// Package vectorset holds the editable list of vectors a host feeds into the
// span engine.
//
// A Set is immutable: every edit (dimension change, add/remove, component
// write, preset, randomization) returns a new Set and never touches the
// receiver. Matrix() hands the engine a fresh copy.
//
// Bounds follow the interactive tool this package models:
//   - dimension in [MinDimension, MaxDimension] = [2, 10];
//   - vector count in [MinVectors, MaxVectors] = [2, 10].
//
// Validate rejects sets the engine should not be asked about (all-zero or
// non-finite input). The engine itself tolerates all-zero input.
package vectorset
