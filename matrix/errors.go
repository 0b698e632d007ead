// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative side.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownFace indicates a boundary face that the stream does not contain.
	ErrUnknownFace = errors.New("matrix: boundary face not in stream")

	// ErrFaceDimension indicates a non-zero boundary coefficient on a face
	// whose dimension is not one less than the element's.
	ErrFaceDimension = errors.New("matrix: boundary face has wrong dimension")
)
