// SPDX-License-Identifier: MIT

// Package span: functional configuration for Analyze and AnalyzeBatch.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Epsilon is NOT configurable: all kernels must agree on one tolerance.
package span

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultConcurrency bounds the number of matrices AnalyzeBatch works on at once.
const DefaultConcurrency = 4

// DefaultCoefficients controls whether Analyze fills Result.Dependencies.
const DefaultCoefficients = false

const panicConcurrencyInvalid = "span: WithConcurrency: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger       *slog.Logger // discard by default
	concurrency  int          // DefaultConcurrency
	coefficients bool         // DefaultCoefficients
}

// WithLogger routes debug/info records of Analyze and AnalyzeBatch to l.
// A nil logger restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithConcurrency sets how many matrices AnalyzeBatch analyzes in parallel.
// Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// WithCoefficients makes Analyze also compute explicit dependency
// coefficients (see Dependencies) into Result.Dependencies.
func WithCoefficients() Option {
	return func(o *Options) { o.coefficients = true }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:       discardLogger(),
		concurrency:  DefaultConcurrency,
		coefficients: DefaultCoefficients,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
