// SPDX-License-Identifier: MIT

package stream

import (
	"iter"

	"github.com/katalvlaran/plexus/basis"
)

// Stream is a filtered chain complex as seen by a persistence algorithm.
//
// All yields the basis in filtration order (index, then Compare) once the
// stream is finalized. Boundary, BoundaryCoefficients and Dimension describe
// an element within this complex, which for derived complexes need not be
// the element's intrinsic boundary or dimension.
type Stream[T basis.Element] interface {
	All() iter.Seq[T]
	FiltrationIndex(e T) (int, error)
	Boundary(e T) []T
	BoundaryCoefficients(e T) []int
	Dimension(e T) int
	Size() int
	Contains(e T) bool
	Finalize()
	Finalized() bool
	Compare(a, b T) int
	MinFiltrationIndex() int
	MaxFiltrationIndex() int
}

// Validate reports whether every face of every element of s is present in s
// with a filtration index not greater than the element's. It stops at the
// first violation.
func Validate[T basis.Element](s Stream[T]) bool {
	for e := range s.All() {
		idx, err := s.FiltrationIndex(e)
		if err != nil {
			return false
		}
		for _, face := range s.Boundary(e) {
			fIdx, err := s.FiltrationIndex(face)
			if err != nil || fIdx > idx {
				return false
			}
		}
	}

	return true
}
