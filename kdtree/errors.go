// SPDX-License-Identifier: MIT

package kdtree

import "errors"

var (
	// ErrNoPoints is returned when building a tree over an empty point set.
	ErrNoPoints = errors.New("kdtree: no points")

	// ErrRaggedPoints is returned when points have differing (or zero) dimension.
	ErrRaggedPoints = errors.New("kdtree: points have inconsistent dimension")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("kdtree: non-finite coordinate")

	// ErrDimensionMismatch is returned when a query point has the wrong dimension.
	ErrDimensionMismatch = errors.New("kdtree: query dimension mismatch")

	// ErrOutOfRange is returned for a point index, position or k outside its valid range.
	ErrOutOfRange = errors.New("kdtree: index out of range")
)
