// SPDX-License-Identifier: MIT

package kdtree

import (
	"fmt"
	"math/rand"
)

// Strategy selects how the median selection rearranges data during the build.
type Strategy int

const (
	// PartitionIndices leaves the point rows in place and partitions an index list.
	PartitionIndices Strategy = iota
	// PermutePoints copies the rows and reorders them into tree order.
	PermutePoints
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case PartitionIndices:
		return "partition-indices"
	case PermutePoints:
		return "permute-points"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option customizes tree construction.
type Option func(*config)

type config struct {
	strategy Strategy
	rng      *rand.Rand // nil means the process-wide math/rand source
}

func newConfig(opts ...Option) config {
	cfg := config{strategy: PartitionIndices}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy selects the build strategy. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != PartitionIndices && s != PermutePoints {
		panic(fmt.Sprintf("kdtree: WithStrategy(%d): unknown strategy", int(s)))
	}

	return func(c *config) { c.strategy = s }
}

// WithRand injects the random source used for pivot selection. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kdtree: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func (c config) intn(n int) int {
	if c.rng == nil {
		return rand.Intn(n)
	}

	return c.rng.Intn(n)
}
