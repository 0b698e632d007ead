// SPDX-License-Identifier: MIT

package metric

import "errors"

var (
	// ErrOutOfRange indicates a point index outside 0..Size()-1.
	ErrOutOfRange = errors.New("metric: index out of range")

	// ErrBadLandmarkCount indicates a landmark count outside 1..Size().
	ErrBadLandmarkCount = errors.New("metric: bad landmark count")

	// ErrNotSquare indicates a distance matrix that is not square.
	ErrNotSquare = errors.New("metric: distance matrix is not square")

	// ErrNotMetric indicates a distance matrix with a negative, non-finite,
	// asymmetric or non-zero diagonal entry.
	ErrNotMetric = errors.New("metric: invalid distance matrix")

	// ErrNoCoordinates is returned by Point on spaces without coordinates.
	ErrNoCoordinates = errors.New("metric: space has no coordinates")
)
