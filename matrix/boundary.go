// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

// Boundary returns the matrix of the dim-th differential of s together with
// its row elements (dimension dim-1) and column elements (dimension dim),
// each in stream order. Faces carrying a zero coefficient are ignored
// whatever their dimension; repeated faces accumulate.
//
// The stream is finalized first so that the order is the filtration order.
//
// Complexity: O(n + r*c) where n is the stream size.
func Boundary[T basis.Element](s stream.Stream[T], dim int) (*Dense, []T, []T, error) {
	s.Finalize()

	var rows, cols []T
	rowOf := make(map[string]int)
	for e := range s.All() {
		switch s.Dimension(e) {
		case dim - 1:
			rowOf[e.Key()] = len(rows)
			rows = append(rows, e)
		case dim:
			cols = append(cols, e)
		}
	}

	m, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, nil, nil, err
	}
	for c, e := range cols {
		coeffs := s.BoundaryCoefficients(e)
		for k, face := range s.Boundary(e) {
			if coeffs[k] == 0 {
				continue
			}
			if s.Dimension(face) != dim-1 {
				return nil, nil, nil, fmt.Errorf("Boundary(%d): %s in ∂%s: %w", dim, face.Key(), e.Key(), ErrFaceDimension)
			}
			r, ok := rowOf[face.Key()]
			if !ok {
				return nil, nil, nil, fmt.Errorf("Boundary(%d): %s in ∂%s: %w", dim, face.Key(), e.Key(), ErrUnknownFace)
			}
			m.add(r, c, float64(coeffs[k]))
		}
	}

	return m, rows, cols, nil
}

// BoundarySquaredIsZero reports whether ∂_{k-1}·∂_k = 0 for k = 2..maxDim.
// It is trivially true for maxDim < 2.
func BoundarySquaredIsZero[T basis.Element](s stream.Stream[T], maxDim int) (bool, error) {
	for k := 2; k <= maxDim; k++ {
		lower, _, _, err := Boundary(s, k-1)
		if err != nil {
			return false, err
		}
		upper, _, _, err := Boundary(s, k)
		if err != nil {
			return false, err
		}
		prod, err := Mul(lower, upper)
		if err != nil {
			return false, err
		}
		if !prod.IsZero() {
			return false, nil
		}
	}

	return true, nil
}
