// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jetobsmc/jet"
	"github.com/katalvlaran/jetobsmc/observable"
)

// Evaluate computes the named observables on every jet. An empty names list
// means every single-jet observable of reg.
//
// Errors: observable.ErrUnknown or observable.ErrPairObservable before any
// work starts; jet.ErrNilJet (wrapped with the jet index) for a nil jet;
// ctx.Err() on cancellation.
//
// Implementation:
//   - Stage 1: check names against reg.
//   - Stage 2: errgroup with SetLimit(workers); jet i writes rows[i].
//   - Stage 3: Wait and return the first error, if any.
func Evaluate(ctx context.Context, jets []*jet.Jet, reg *observable.Registry, names []string, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if len(names) == 0 {
		names = reg.SingleJetNames()
	}
	if err := reg.Check(names...); err != nil {
		return nil, fmt.Errorf("batch.Evaluate: %w", err)
	}

	start := time.Now()
	o.logger.Debug("batch started",
		zap.Int("jets", len(jets)),
		zap.Int("observables", len(names)),
		zap.Int("workers", o.workers))

	rows := make([][]float64, len(jets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, j := range jets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vals, err := reg.Evaluate(j, names...)
			if err != nil {
				return fmt.Errorf("jet %d: %w", i, err)
			}
			rows[i] = vals

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.Debug("batch failed", zap.Error(err))
		return nil, err
	}
	// A cancelled parent may stop the loop with no goroutine reporting it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.logger.Debug("batch finished",
		zap.Int("jets", len(jets)),
		zap.Duration("elapsed", time.Since(start)))

	return &Table{Names: slices.Clone(names), Rows: rows}, nil
}
