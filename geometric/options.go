// SPDX-License-Identifier: MIT

package geometric

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/plexus/filtration"
	"github.com/katalvlaran/plexus/stream"
)

// defaultDivisions is the number of filtration indices the default linear
// converter spreads [0, max] over.
const defaultDivisions = 20

// Option customizes a construction.
type Option func(*config)

type config struct {
	workers    int
	converter  filtration.Converter // nil: a linear converter over [0, max]
	logger     *slog.Logger
	streamOpts []stream.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// converterFor returns the configured converter or a linear one over [0, max].
func (c config) converterFor(max float64) (filtration.Converter, error) {
	if c.converter != nil {
		return c.converter, nil
	}

	return filtration.NewIncreasingLinear(defaultDivisions, 0, max)
}

// WithWorkers bounds the number of goroutines used for neighbor queries.
// Default: GOMAXPROCS. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("geometric: WithWorkers(n < 1)")
	}

	return func(c *config) { c.workers = n }
}

// WithConverter sets the value -> index converter. Default: 20 linear
// divisions of [0, max distance] (of [0, max edge weight] for FlagComplex).
// Panics on nil.
func WithConverter(conv filtration.Converter) Option {
	if conv == nil {
		panic("geometric: WithConverter(nil)")
	}

	return func(c *config) { c.converter = conv }
}

// WithLogger sets the logger for debug summaries. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("geometric: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithBucketedStorage makes the resulting stream use bucketed storage.
func WithBucketedStorage() Option {
	return func(c *config) { c.streamOpts = append(c.streamOpts, stream.WithBucketedStorage()) }
}
