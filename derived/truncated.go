// SPDX-License-Identifier: MIT

package derived

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

// Truncated is the sub-stream of s made of the elements whose filtration
// index is at most a cutoff. Boundaries are those of s; truncating a valid
// stream yields a valid stream.
type Truncated[T basis.Element] struct {
	s        stream.Stream[T]
	cutoff   int
	size     int
	maxIndex int
}

// NewTruncated returns the truncation of s at maxIndex, finalizing s first.
func NewTruncated[T basis.Element](s stream.Stream[T], maxIndex int) *Truncated[T] {
	s.Finalize()

	t := &Truncated[T]{s: s, cutoff: maxIndex}
	for e := range t.All() {
		idx, _ := s.FiltrationIndex(e)
		if t.size == 0 || idx > t.maxIndex {
			t.maxIndex = idx
		}
		t.size++
	}

	return t
}

func (t *Truncated[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range t.s.All() {
			if idx, err := t.s.FiltrationIndex(e); err != nil || idx > t.cutoff {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (t *Truncated[T]) FiltrationIndex(e T) (int, error) {
	idx, err := t.s.FiltrationIndex(e)
	if err != nil {
		return 0, err
	}
	if idx > t.cutoff {
		return 0, fmt.Errorf("Truncated.FiltrationIndex(%s): index %d past cutoff %d: %w",
			e.Key(), idx, t.cutoff, stream.ErrNotFound)
	}

	return idx, nil
}

func (t *Truncated[T]) Boundary(e T) []T { return t.s.Boundary(e) }

func (t *Truncated[T]) BoundaryCoefficients(e T) []int { return t.s.BoundaryCoefficients(e) }

func (t *Truncated[T]) Dimension(e T) int { return t.s.Dimension(e) }

func (t *Truncated[T]) Size() int { return t.size }

func (t *Truncated[T]) Contains(e T) bool {
	_, err := t.FiltrationIndex(e)

	return err == nil
}

// Finalize is a no-op; the underlying stream was sealed on construction.
func (t *Truncated[T]) Finalize() {}

func (t *Truncated[T]) Finalized() bool { return true }

func (t *Truncated[T]) Compare(a, b T) int { return t.s.Compare(a, b) }

func (t *Truncated[T]) MinFiltrationIndex() int {
	if t.size == 0 {
		return 0
	}

	return t.s.MinFiltrationIndex()
}

// MaxFiltrationIndex returns the largest index kept, which may be below the cutoff.
func (t *Truncated[T]) MaxFiltrationIndex() int { return t.maxIndex }
