// SPDX-License-Identifier: MIT

package filtration

import "errors"

var (
	// ErrBadDivisions is returned for a linear converter with fewer than one division.
	ErrBadDivisions = errors.New("filtration: divisions must be positive")

	// ErrBadRange is returned when max < min or either bound is not finite.
	ErrBadRange = errors.New("filtration: invalid value range")

	// ErrNoValues is returned for an external converter without values.
	ErrNoValues = errors.New("filtration: no filtration values")
)
