// SPDX-License-Identifier: MIT

// Vectorcheck analyzes a set of vectors and prints a report.
//
// Usage:
//
//	vectorcheck [flags]
//
// The vector set comes from one of:
//
//	-example NAME   a built-in preset (see -list)
//	-in FILE        a JSON or YAML list of vectors; "-" reads stdin; repeatable
//	(neither)       DefaultVectors zero vectors of -dim, usually with -random
//
// Examples:
//
//	vectorcheck -example 3D-dependent
//	vectorcheck -dim 4 -random -seed 7 -format json
//	vectorcheck -in a.yaml -in b.json -format summary
//	vectorcheck -example 2D-independent -coefficients -out reports/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "vectorcheck: %v\n", err)
		return 2
	}
	if cfg.list {
		for _, name := range listExamples() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if err = execute(cfg, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "vectorcheck: %v\n", err)
		return 1
	}

	return 0
}
