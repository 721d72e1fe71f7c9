// SPDX-License-Identifier: MIT

package span

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vectorspan/matrix"
)

// AnalyzeBatch analyzes independent vector sets concurrently.
// Results are returned in input order. At most WithConcurrency(n) sets are in
// flight; the first failure (or ctx cancellation) stops jobs not yet started.
//
// Errors:
//   - the first Analyze error, tagged with the failing index;
//   - ctx.Err() when cancelled before all jobs started.
func AnalyzeBatch(ctx context.Context, ms []matrix.Matrix, opts ...Option) ([]*Result, error) {
	o := gatherOptions(opts...)
	out := make([]*Result, len(ms))

	o.logger.Info("batch analysis started", "count", len(ms), "concurrency", o.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, m := range ms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Analyze(m, opts...)
			if err != nil {
				return fmt.Errorf("matrix %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Error("batch analysis failed", "count", len(ms), "error", err)
		return nil, spanErrorf(opAnalyzeBatch, err)
	}

	o.logger.Info("batch analysis completed", "count", len(ms))

	return out, nil
}
