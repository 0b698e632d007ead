// SPDX-License-Identifier: MIT

package derived

import "log/slog"

// Option customizes derived stream construction.
type Option func(*config)

type config struct {
	bucketed bool
	logger   *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBucketedStorage stores product elements in filtration/dimension
// buckets instead of one sorted list.
func WithBucketedStorage() Option {
	return func(c *config) { c.bucketed = true }
}

// WithLogger sets the logger for debug summaries. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("derived: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
