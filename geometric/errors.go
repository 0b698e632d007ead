// SPDX-License-Identifier: MIT

package geometric

import "errors"

var (
	// ErrBadDimension indicates a negative maximum dimension.
	ErrBadDimension = errors.New("geometric: maximum dimension must be non-negative")

	// ErrBadDistance indicates a negative or non-finite maximum distance.
	ErrBadDistance = errors.New("geometric: maximum distance must be finite and non-negative")

	// ErrBadNu indicates a witness parameter ν outside 0..len(landmarks).
	ErrBadNu = errors.New("geometric: nu out of range")

	// ErrNoLandmarks indicates an empty landmark set.
	ErrNoLandmarks = errors.New("geometric: no landmarks")

	// ErrDuplicateLandmark indicates a point listed twice as a landmark.
	ErrDuplicateLandmark = errors.New("geometric: duplicate landmark")
)
