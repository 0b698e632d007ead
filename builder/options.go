// SPDX-License-Identifier: MIT
// Package: plexus/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/plexus/stream"
)

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStreamOptions forwards options to the streams the constructors build,
// e.g. stream.WithBucketedStorage().
func WithStreamOptions(opts ...stream.Option) BuilderOption {
	return func(c *builderConfig) {
		c.streamOpts = append(c.streamOpts, opts...)
	}
}
