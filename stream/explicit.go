// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/filtration"
	"github.com/katalvlaran/plexus/storage"
)

// Explicit is a filtered stream built element by element.
type Explicit[T basis.Primitive[T]] struct {
	store     storage.Strategy[T]
	converter filtration.Converter
	logger    *slog.Logger
}

// New returns an empty open stream ordered by cmp within a filtration index.
func New[T basis.Primitive[T]](cmp func(a, b T) int, opts ...Option) *Explicit[T] {
	cfg := newConfig(opts...)

	var store storage.Strategy[T]
	switch cfg.storage {
	case bucketedStorage:
		store = storage.NewBucketed(cmp, nil)
	default:
		store = storage.NewSorted(cmp)
	}

	return &Explicit[T]{store: store, converter: cfg.converter, logger: cfg.logger}
}

// NewSimplexStream returns an empty simplicial stream.
func NewSimplexStream(opts ...Option) *Explicit[basis.Simplex] {
	return New(basis.CompareSimplex, opts...)
}

// AddElement inserts e at index. Adding an element already present replaces
// its previous index.
func (s *Explicit[T]) AddElement(e T, index int) error {
	if err := s.store.Add(e, index); err != nil {
		return fmt.Errorf("AddElement: %w", err)
	}

	return nil
}

// UpdateOrAddElement sets the index of e, inserting it when absent.
func (s *Explicit[T]) UpdateOrAddElement(e T, index int) error {
	if err := s.store.Update(e, index); err != nil {
		return fmt.Errorf("UpdateOrAddElement: %w", err)
	}

	return nil
}

// RemoveElement deletes e and reports whether it was present.
func (s *Explicit[T]) RemoveElement(e T) (bool, error) {
	ok, err := s.store.Remove(e)
	if err != nil {
		return false, fmt.Errorf("RemoveElement: %w", err)
	}

	return ok, nil
}

// AddElementValue inserts e at the index the converter assigns to value.
func (s *Explicit[T]) AddElementValue(e T, value float64) error {
	return s.AddElement(e, s.converter.Index(value))
}

// AddAll copies every element of src, with its filtration index, into s.
func (s *Explicit[T]) AddAll(src Stream[T]) error {
	for e := range src.All() {
		idx, err := src.FiltrationIndex(e)
		if err != nil {
			return fmt.Errorf("AddAll: %w", err)
		}
		if err := s.AddElement(e, idx); err != nil {
			return fmt.Errorf("AddAll: %w", err)
		}
	}

	return nil
}

// Contains reports whether e has been added.
func (s *Explicit[T]) Contains(e T) bool { return s.store.Contains(e) }

// FiltrationIndex returns the index of e, or ErrNotFound.
func (s *Explicit[T]) FiltrationIndex(e T) (int, error) {
	idx, ok := s.store.FiltrationIndex(e)
	if !ok {
		return 0, fmt.Errorf("FiltrationIndex(%s): %w", e.Key(), ErrNotFound)
	}

	return idx, nil
}

// FiltrationValue maps the index of e back to a value through the converter.
func (s *Explicit[T]) FiltrationValue(e T) (float64, error) {
	idx, err := s.FiltrationIndex(e)
	if err != nil {
		return 0, err
	}

	return s.converter.Value(idx), nil
}

// Converter returns the value <-> index converter of s.
func (s *Explicit[T]) Converter() filtration.Converter { return s.converter }

func (s *Explicit[T]) Size() int { return s.store.Len() }

func (s *Explicit[T]) All() iter.Seq[T] { return s.store.All() }

func (s *Explicit[T]) Boundary(e T) []T { return e.Boundary() }

func (s *Explicit[T]) BoundaryCoefficients(e T) []int { return e.BoundaryCoefficients() }

func (s *Explicit[T]) Dimension(e T) int { return e.Dimension() }

func (s *Explicit[T]) Compare(a, b T) int { return s.store.Compare(a, b) }

func (s *Explicit[T]) MinFiltrationIndex() int { return s.store.MinFiltrationIndex() }

func (s *Explicit[T]) MaxFiltrationIndex() int { return s.store.MaxFiltrationIndex() }

func (s *Explicit[T]) Finalized() bool { return s.store.Finalized() }

// Finalize seals the stream. Calling it again is a no-op.
func (s *Explicit[T]) Finalize() {
	if s.store.Finalized() {
		return
	}
	s.store.Finalize()
	s.logger.Debug("stream: finalized",
		slog.Int("size", s.store.Len()),
		slog.Int("min_index", s.store.MinFiltrationIndex()),
		slog.Int("max_index", s.store.MaxFiltrationIndex()))
}

// Validate reports whether s satisfies the face condition; see Validate.
func (s *Explicit[T]) Validate() bool { return Validate[T](s) }
