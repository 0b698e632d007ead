// SPDX-License-Identifier: MIT

// Package matrix provides dense boundary matrices of filtered chain complexes.
//
// Boundary(s, k) lays out the k-th differential of a stream as a Dense
// matrix: one column per k-dimensional element, one row per
// (k-1)-dimensional element, both in stream order. Entry (r, c) is the
// coefficient of row element r in the boundary of column element c.
// BoundarySquaredIsZero multiplies consecutive differentials and checks the
// chain complex identity ∂∂ = 0.
//
// Dense is row-major with the explicit offset formula i*cols + j. Empty
// shapes (0 rows or 0 columns) are allowed, since a complex may have no
// elements in some dimension.
//
// Errors:
//
//	ErrBadShape          - negative row or column count.
//	ErrOutOfRange        - At/Set outside the matrix.
//	ErrDimensionMismatch - Mul with a.Cols() != b.Rows().
//	ErrUnknownFace       - a boundary face is absent from the stream.
//	ErrFaceDimension     - a non-zero boundary term in the wrong dimension.
package matrix
