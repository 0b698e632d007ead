// SPDX-License-Identifier: MIT

package basis

import "errors"

// Sentinel errors for basis element construction and checks.
// Callers branch with errors.Is; context is attached with %w.
var (
	// ErrDimensionMismatch indicates that the boundary entries of a cell do not
	// share one dimension. Reported only by the advisory Cell.VerifyDimension.
	ErrDimensionMismatch = errors.New("basis: boundary dimension mismatch")

	// ErrCoefficientLength indicates that a boundary list and its attaching
	// degrees have different lengths.
	ErrCoefficientLength = errors.New("basis: boundary and coefficient lengths differ")

	// ErrNilCell indicates a nil *Cell inside a boundary list.
	ErrNilCell = errors.New("basis: nil cell in boundary")

	// ErrNegativeDimension indicates a cell constructed with dimension < 0.
	ErrNegativeDimension = errors.New("basis: negative dimension")

	// ErrUnknownCell indicates an arena lookup for an id it never issued.
	ErrUnknownCell = errors.New("basis: unknown cell id")
)
