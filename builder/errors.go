// SPDX-License-Identifier: MIT
// Package: plexus/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w via builderErrorf.
//   • Constructors never panic on parameters; option constructors do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (e.g., the m of Circle(m))
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates an invalid point count, dimension or radius.
var ErrBadSize = errors.New("builder: invalid size/length")

// builderErrorf prefixes err with the constructor name and a formatted
// detail, preserving err for errors.Is.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
