// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/vectorspan/matrix"
	"github.com/katalvlaran/vectorspan/report"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/katalvlaran/vectorspan/vectorset"
)

// execute loads the sets, analyzes them and writes one report per set.
func execute(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(cfg, stderr)

	sets, err := loadSets(cfg, stdin)
	if err != nil {
		return err
	}
	for i, s := range sets {
		if err = s.Validate(); err != nil {
			return fmt.Errorf("%s: %w", setName(cfg, i), err)
		}
	}

	ms := make([]matrix.Matrix, len(sets))
	for i, s := range sets {
		if ms[i], err = s.Matrix(); err != nil {
			return err
		}
	}

	opts := []span.Option{span.WithLogger(logger), span.WithConcurrency(cfg.concurrency)}
	if cfg.coefficients {
		opts = append(opts, span.WithCoefficients())
	}
	results, err := span.AnalyzeBatch(context.Background(), ms, opts...)
	if err != nil {
		return err
	}

	now := time.Now()
	for i, res := range results {
		if err = emit(cfg, sets[i], res, now, i == 0, stdout, logger); err != nil {
			return err
		}
	}

	return nil
}

// loadSets resolves the input sources into vector sets.
func loadSets(cfg *config, stdin io.Reader) ([]vectorset.Set, error) {
	var sets []vectorset.Set

	switch {
	case len(cfg.in) > 0:
		for _, name := range cfg.in {
			s, err := readSet(name, stdin)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			sets = append(sets, s)
		}
	case cfg.example != "":
		s, err := vectorset.Example(cfg.example)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	default:
		dim := cfg.dim
		if dim == 0 {
			dim = vectorset.DefaultDimension
		}
		s, err := vectorset.New(dim)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	for i, s := range sets {
		if cfg.dim != 0 && s.Dimension() != cfg.dim {
			resized, err := s.WithDimension(cfg.dim)
			if err != nil {
				return nil, err
			}
			s = resized
		}
		if cfg.random {
			s = s.Random(rng)
		}
		sets[i] = s
	}

	return sets, nil
}

func readSet(name string, stdin io.Reader) (vectorset.Set, error) {
	if name == "-" {
		return vectorset.Decode(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return vectorset.Set{}, err
	}
	defer f.Close()

	return vectorset.Decode(f)
}

// emit writes one report to stdout, to -out, or into the -out directory.
// A plain -out file is truncated by the first report of the run and
// appended to by the rest.
func emit(cfg *config, s vectorset.Set, res *span.Result, now time.Time, first bool, stdout io.Writer, logger *slog.Logger) error {
	rows := s.Rows()
	if cfg.out == "" {
		return report.Write(stdout, cfg.format, rows, res, cfg.precision, now)
	}

	var (
		f    *os.File
		path = cfg.out
		err  error
	)
	if strings.HasSuffix(cfg.out, "/") || strings.HasSuffix(cfg.out, string(os.PathSeparator)) {
		if err = os.MkdirAll(cfg.out, 0o755); err != nil {
			return err
		}
		if f, path, err = createUnique(cfg.out, res.Dimension, now, cfg.format.Ext()); err != nil {
			return err
		}
	} else {
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if first {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
		if f, err = os.OpenFile(path, flags, 0o644); err != nil {
			return err
		}
	}

	if err = report.Write(f, cfg.format, rows, res, cfg.precision, now); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Info("report written", "path", path, "format", string(cfg.format))

	return nil
}

// createUnique creates report.Filename inside dir, stepping the timestamp a
// millisecond forward while the name is taken. Any other error is returned.
func createUnique(dir string, dim int, at time.Time, ext string) (*os.File, string, error) {
	for {
		path := filepath.Join(dir, report.Filename(dim, at, ext))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		switch {
		case err == nil:
			return f, path, nil
		case !os.IsExist(err):
			return nil, "", err
		}
		at = at.Add(time.Millisecond)
	}
}

func setName(cfg *config, i int) string {
	switch {
	case len(cfg.in) > 0:
		return cfg.in[i]
	case cfg.example != "":
		return cfg.example
	}

	return "vectors"
}
