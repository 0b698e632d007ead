// SPDX-License-Identifier: MIT

package storage

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/plexus/basis"
)

type entry[T any] struct {
	index int
	elem  T
	live  bool
}

// Sorted is the ordered-list strategy: insertion appends, sealing sorts once.
//
// Complexity: Add/Update/Remove O(1) amortized; Finalize O(n log n);
// memory O(n) plus tombstones until sealed.
type Sorted[T basis.Element] struct {
	cmp     func(a, b T) int
	entries []entry[T]
	pos     map[string]int // key -> position of the live entry
	sealed  bool
}

// NewSorted returns an empty open Sorted store ordered by cmp within an index.
func NewSorted[T basis.Element](cmp func(a, b T) int) *Sorted[T] {
	return &Sorted[T]{cmp: cmp, pos: make(map[string]int)}
}

func (s *Sorted[T]) Add(e T, index int) error {
	if s.sealed {
		return fmt.Errorf("Sorted.Add(%s): %w", e.Key(), ErrSealed)
	}
	s.put(e, index)

	return nil
}

func (s *Sorted[T]) Update(e T, index int) error {
	if s.sealed {
		return fmt.Errorf("Sorted.Update(%s): %w", e.Key(), ErrSealed)
	}
	s.put(e, index)

	return nil
}

func (s *Sorted[T]) put(e T, index int) {
	key := e.Key()
	if p, ok := s.pos[key]; ok {
		s.entries[p].live = false
	}
	s.pos[key] = len(s.entries)
	s.entries = append(s.entries, entry[T]{index: index, elem: e, live: true})
}

func (s *Sorted[T]) Remove(e T) (bool, error) {
	if s.sealed {
		return false, fmt.Errorf("Sorted.Remove(%s): %w", e.Key(), ErrSealed)
	}
	key := e.Key()
	p, ok := s.pos[key]
	if !ok {
		return false, nil
	}
	s.entries[p].live = false
	delete(s.pos, key)

	return true, nil
}

func (s *Sorted[T]) Contains(e T) bool {
	_, ok := s.pos[e.Key()]

	return ok
}

func (s *Sorted[T]) FiltrationIndex(e T) (int, bool) {
	p, ok := s.pos[e.Key()]
	if !ok {
		return 0, false
	}

	return s.entries[p].index, true
}

// Finalize drops tombstones, sorts by (index, comparator) and seals.
func (s *Sorted[T]) Finalize() {
	if s.sealed {
		return
	}
	live := s.entries[:0]
	for _, en := range s.entries {
		if en.live {
			live = append(live, en)
		}
	}
	clear(s.entries[len(live):])
	s.entries = live

	slices.SortFunc(s.entries, func(a, b entry[T]) int {
		if c := cmp.Compare(a.index, b.index); c != 0 {
			return c
		}

		return s.cmp(a.elem, b.elem)
	})
	for p, en := range s.entries {
		s.pos[en.elem.Key()] = p
	}
	s.sealed = true
}

func (s *Sorted[T]) Finalized() bool { return s.sealed }

func (s *Sorted[T]) Len() int { return len(s.pos) }

func (s *Sorted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, en := range s.entries {
			if en.live && !yield(en.elem) {
				return
			}
		}
	}
}

func (s *Sorted[T]) MinFiltrationIndex() int {
	if s.sealed {
		if len(s.entries) == 0 {
			return 0
		}

		return s.entries[0].index
	}

	return s.scan(func(a, b int) bool { return a < b })
}

func (s *Sorted[T]) MaxFiltrationIndex() int {
	if s.sealed {
		if len(s.entries) == 0 {
			return 0
		}

		return s.entries[len(s.entries)-1].index
	}

	return s.scan(func(a, b int) bool { return a > b })
}

func (s *Sorted[T]) scan(better func(a, b int) bool) int {
	found, best := false, 0
	for _, en := range s.entries {
		if en.live && (!found || better(en.index, best)) {
			found, best = true, en.index
		}
	}

	return best
}

func (s *Sorted[T]) Compare(a, b T) int { return s.cmp(a, b) }
