// SPDX-License-Identifier: MIT

package storage

import (
	"iter"

	"github.com/katalvlaran/plexus/basis"
)

// Strategy is a pluggable store of (element, filtration index) associations.
type Strategy[T basis.Element] interface {
	// Add associates e with index. Adding an element already present
	// replaces its previous index.
	Add(e T, index int) error
	// Update sets the index of e, inserting e when absent.
	Update(e T, index int) error
	// Remove deletes e and reports whether it was present.
	Remove(e T) (bool, error)
	// Contains reports whether e is present.
	Contains(e T) bool
	// FiltrationIndex returns the index of e and whether e is present.
	FiltrationIndex(e T) (int, bool)
	// Finalize seals the store. Calling it again is a no-op.
	Finalize()
	// Finalized reports whether the store is sealed.
	Finalized() bool
	// Len returns the number of distinct elements.
	Len() int
	// All yields every element; ordered by (index, Compare) once sealed.
	All() iter.Seq[T]
	// MinFiltrationIndex and MaxFiltrationIndex bound the stored indices;
	// both are 0 on an empty store.
	MinFiltrationIndex() int
	MaxFiltrationIndex() int
	// Compare breaks ties within an index; All is increasing under it.
	Compare(a, b T) int
}
