// SPDX-License-Identifier: MIT

package storage

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/plexus/basis"
)

type bucket[T any] struct {
	elems []T
	once  sync.Once
}

// Bucketed is the filtration index -> dimension -> elements strategy.
//
// Complexity: Add O(1) amortized; Update/Remove O(b) for a bucket of size b;
// a full sealed iteration costs Σ b log b, paid once.
type Bucketed[T basis.Element] struct {
	cmp     func(a, b T) int
	dim     func(T) int
	buckets map[int]map[int]*bucket[T]
	index   map[string]int
	sealed  bool

	// computed by Finalize
	indices []int
	dims    map[int][]int
}

// NewBucketed returns an empty open Bucketed store. dim chooses the dimension
// bucket of an element; nil means T.Dimension. A custom dim lets complexes
// with a regraded dimension (hom complexes) bucket correctly.
func NewBucketed[T basis.Element](cmp func(a, b T) int, dim func(T) int) *Bucketed[T] {
	if dim == nil {
		dim = func(e T) int { return e.Dimension() }
	}

	return &Bucketed[T]{
		cmp:     cmp,
		dim:     dim,
		buckets: make(map[int]map[int]*bucket[T]),
		index:   make(map[string]int),
	}
}

func (b *Bucketed[T]) Add(e T, index int) error {
	if b.sealed {
		return fmt.Errorf("Bucketed.Add(%s): %w", e.Key(), ErrSealed)
	}
	b.put(e, index)

	return nil
}

func (b *Bucketed[T]) Update(e T, index int) error {
	if b.sealed {
		return fmt.Errorf("Bucketed.Update(%s): %w", e.Key(), ErrSealed)
	}
	b.put(e, index)

	return nil
}

func (b *Bucketed[T]) put(e T, index int) {
	key := e.Key()
	if old, ok := b.index[key]; ok {
		b.unlink(key, old, b.dim(e))
	}

	byDim, ok := b.buckets[index]
	if !ok {
		byDim = make(map[int]*bucket[T])
		b.buckets[index] = byDim
	}
	d := b.dim(e)
	bk, ok := byDim[d]
	if !ok {
		bk = &bucket[T]{}
		byDim[d] = bk
	}
	bk.elems = append(bk.elems, e)
	b.index[key] = index
}

func (b *Bucketed[T]) Remove(e T) (bool, error) {
	if b.sealed {
		return false, fmt.Errorf("Bucketed.Remove(%s): %w", e.Key(), ErrSealed)
	}
	key := e.Key()
	old, ok := b.index[key]
	if !ok {
		return false, nil
	}
	b.unlink(key, old, b.dim(e))
	delete(b.index, key)

	return true, nil
}

// unlink removes key from bucket (index, d), dropping empty buckets.
func (b *Bucketed[T]) unlink(key string, index, d int) {
	byDim := b.buckets[index]
	bk := byDim[d]
	bk.elems = slices.DeleteFunc(bk.elems, func(x T) bool { return x.Key() == key })
	if len(bk.elems) > 0 {
		return
	}
	delete(byDim, d)
	if len(byDim) == 0 {
		delete(b.buckets, index)
	}
}

func (b *Bucketed[T]) Contains(e T) bool {
	_, ok := b.index[e.Key()]

	return ok
}

func (b *Bucketed[T]) FiltrationIndex(e T) (int, bool) {
	i, ok := b.index[e.Key()]

	return i, ok
}

// Finalize records the sorted index and dimension keys and seals. Buckets
// themselves are sorted lazily by All.
func (b *Bucketed[T]) Finalize() {
	if b.sealed {
		return
	}
	b.indices = slices.Sorted(maps.Keys(b.buckets))
	b.dims = make(map[int][]int, len(b.buckets))
	for idx, byDim := range b.buckets {
		b.dims[idx] = slices.Sorted(maps.Keys(byDim))
	}
	b.sealed = true
}

func (b *Bucketed[T]) Finalized() bool { return b.sealed }

func (b *Bucketed[T]) Len() int { return len(b.index) }

func (b *Bucketed[T]) All() iter.Seq[T] {
	if !b.sealed {
		return b.unordered()
	}

	return func(yield func(T) bool) {
		for _, idx := range b.indices {
			byDim := b.buckets[idx]
			for _, d := range b.dims[idx] {
				bk := byDim[d]
				bk.once.Do(func() { slices.SortFunc(bk.elems, b.cmp) })
				for _, e := range bk.elems {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}

func (b *Bucketed[T]) unordered() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, byDim := range b.buckets {
			for _, bk := range byDim {
				for _, e := range bk.elems {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}

func (b *Bucketed[T]) MinFiltrationIndex() int {
	if b.sealed {
		if len(b.indices) == 0 {
			return 0
		}

		return b.indices[0]
	}
	if len(b.buckets) == 0 {
		return 0
	}

	return slices.Min(slices.Collect(maps.Keys(b.buckets)))
}

func (b *Bucketed[T]) MaxFiltrationIndex() int {
	if b.sealed {
		if len(b.indices) == 0 {
			return 0
		}

		return b.indices[len(b.indices)-1]
	}
	if len(b.buckets) == 0 {
		return 0
	}

	return slices.Max(slices.Collect(maps.Keys(b.buckets)))
}

// Compare orders by bucket dimension first, then by the basis comparator,
// which is the order All yields within one filtration index.
func (b *Bucketed[T]) Compare(x, y T) int {
	if c := cmp.Compare(b.dim(x), b.dim(y)); c != 0 {
		return c
	}

	return b.cmp(x, y)
}
