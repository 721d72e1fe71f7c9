// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/vectorspan/report"
	"github.com/katalvlaran/vectorspan/span"
	"github.com/katalvlaran/vectorspan/vectorset"
)

var errHelp = errors.New("help requested")

// config is the parsed command line.
type config struct {
	dim          int
	example      string
	random       bool
	seed         int64
	in           multiFlag
	format       report.Format
	out          string
	precision    int
	coefficients bool
	concurrency  int
	logLevel     slog.Level
	logJSON      bool
	list         bool
}

// multiFlag allows setting a value multiple times to collect a list, as in -in=a.yaml -in=b.json.
type multiFlag []string

func (m *multiFlag) String() string {
	return fmt.Sprint(*m)
}

func (m *multiFlag) Set(val string) error {
	*m = append(*m, val)
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var (
		cfg      config
		format   string
		logLevel string
	)

	fs := flag.NewFlagSet("vectorcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.dim, "dim", 0, fmt.Sprintf("vector dimension in [%d,%d]; resizes -example/-in sets (default %d)", vectorset.MinDimension, vectorset.MaxDimension, vectorset.DefaultDimension))
	fs.StringVar(&cfg.example, "example", "", "built-in preset name (see -list)")
	fs.BoolVar(&cfg.random, "random", false, "replace every component with a random value in [-3,3)")
	fs.Int64Var(&cfg.seed, "seed", 1, "random seed for -random")
	fs.Var(&cfg.in, "in", "JSON or YAML vector file, - for stdin; can be set multiple times")
	fs.StringVar(&format, "format", string(report.FormatText), "output format: text, summary, json or yaml")
	fs.StringVar(&cfg.out, "out", "", "output file; a path ending in / is a directory that gets one auto-named file per set")
	fs.IntVar(&cfg.precision, "precision", report.DefaultPrecision, fmt.Sprintf("decimals for json/yaml, clamped to [%d,%d]", report.MinPrecision, report.MaxPrecision))
	fs.BoolVar(&cfg.coefficients, "coefficients", false, "also compute explicit dependency coefficients")
	fs.IntVar(&cfg.concurrency, "concurrency", span.DefaultConcurrency, "sets analyzed in parallel with several -in files")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "write logs as JSON")
	fs.BoolVar(&cfg.list, "list", false, "list the built-in presets and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	var err error
	if cfg.format, err = report.ParseFormat(format); err != nil {
		return nil, err
	}
	if err = cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	if cfg.example != "" && len(cfg.in) > 0 {
		return nil, errors.New("-example and -in are mutually exclusive")
	}
	if cfg.concurrency < 1 {
		return nil, fmt.Errorf("-concurrency must be >= 1, got %d", cfg.concurrency)
	}

	return &cfg, nil
}

// newLogger builds the stderr handler selected by -log-level and -log-json.
func newLogger(cfg *config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func listExamples() []string {
	return vectorset.ExampleNames()
}
