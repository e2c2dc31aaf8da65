// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Option configures Evaluate.
type Option func(*Options)

// Options holds the worker bound and the logger.
type Options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers bounds the number of jets evaluated concurrently.
// Panics if n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("batch: WithWorkers(%d): need n > 0", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger; a nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
