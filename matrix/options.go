// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric ingestion policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation.
// NewFromRows rejects NaN/±Inf components and Set refuses to store them.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation for the produced Dense.
//
// AI-Hints:
//   - Only useful when the host already sanitized input and wants raw passthrough.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins. Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
