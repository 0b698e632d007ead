// SPDX-License-Identifier: MIT
// Package: plexus/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil   (stochastic fixtures fail with ErrNeedRandSource)
//   • streamOpts = none  (sorted storage, identity converter)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/plexus/stream"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng        *rand.Rand      // nil means "no randomness"
	streamOpts []stream.Option // forwarded to every stream constructor
}

// newBuilderConfig applies all options in order; later options override
// earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// requireRand returns the configured RNG or ErrNeedRandSource.
func (c builderConfig) requireRand(method string) (*rand.Rand, error) {
	if c.rng == nil {
		return nil, builderErrorf(method, "WithSeed or WithRand", ErrNeedRandSource)
	}

	return c.rng, nil
}
