// SPDX-License-Identifier: MIT

package stream

import (
	"log/slog"

	"github.com/katalvlaran/plexus/filtration"
)

type storageKind int

const (
	sortedStorage storageKind = iota
	bucketedStorage
)

// Option customizes an Explicit stream.
type Option func(*config)

type config struct {
	storage   storageKind
	converter filtration.Converter
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		storage:   sortedStorage,
		converter: filtration.Identity,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSortedStorage selects the ordered-list storage (the default).
func WithSortedStorage() Option {
	return func(c *config) { c.storage = sortedStorage }
}

// WithBucketedStorage selects the filtration/dimension bucketed storage.
func WithBucketedStorage() Option {
	return func(c *config) { c.storage = bucketedStorage }
}

// WithConverter sets the value <-> index converter used by AddElementValue
// and FiltrationValue. Default: filtration.Identity. Panics on nil.
func WithConverter(conv filtration.Converter) Option {
	if conv == nil {
		panic("stream: WithConverter(nil)")
	}

	return func(c *config) { c.converter = conv }
}

// WithLogger sets the logger for debug summaries. Default: slog.Default().
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("stream: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
