// SPDX-License-Identifier: MIT

package derived

import (
	"iter"
	"slices"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

// Dual is the coboundary complex of a forward stream: the boundary of e in
// Dual is the set of elements whose forward boundary contains e, with the
// same coefficients.
type Dual[T basis.Element] struct {
	forward stream.Stream[T]
	order   []T // reverse of the forward order
	cofaces map[string][]T
	coeffs  map[string][]int
}

// NewDual inverts the boundary relation of forward, finalizing it first.
//
// Complexity: O(n + Σ|∂e|) time and memory.
func NewDual[T basis.Element](forward stream.Stream[T]) *Dual[T] {
	forward.Finalize()

	d := &Dual[T]{
		forward: forward,
		order:   make([]T, 0, forward.Size()),
		cofaces: make(map[string][]T),
		coeffs:  make(map[string][]int),
	}
	for e := range forward.All() {
		d.order = append(d.order, e)
		coeffs := forward.BoundaryCoefficients(e)
		for i, face := range forward.Boundary(e) {
			key := face.Key()
			d.cofaces[key] = append(d.cofaces[key], e)
			d.coeffs[key] = append(d.coeffs[key], coeffs[i])
		}
	}
	slices.Reverse(d.order)

	return d
}

// Forward returns the stream d was built from.
func (d *Dual[T]) Forward() stream.Stream[T] { return d.forward }

func (d *Dual[T]) All() iter.Seq[T] { return slices.Values(d.order) }

func (d *Dual[T]) FiltrationIndex(e T) (int, error) { return d.forward.FiltrationIndex(e) }

// Boundary returns the coboundary of e; empty when e has no cofaces.
func (d *Dual[T]) Boundary(e T) []T {
	out := slices.Clone(d.cofaces[e.Key()])
	if out == nil {
		return []T{}
	}

	return out
}

func (d *Dual[T]) BoundaryCoefficients(e T) []int {
	out := slices.Clone(d.coeffs[e.Key()])
	if out == nil {
		return []int{}
	}

	return out
}

func (d *Dual[T]) Dimension(e T) int { return d.forward.Dimension(e) }

func (d *Dual[T]) Size() int { return len(d.order) }

func (d *Dual[T]) Contains(e T) bool { return d.forward.Contains(e) }

// Finalize is a no-op; a Dual is sealed on construction.
func (d *Dual[T]) Finalize() {}

func (d *Dual[T]) Finalized() bool { return true }

// Compare is the forward comparator reversed.
func (d *Dual[T]) Compare(a, b T) int { return d.forward.Compare(b, a) }

func (d *Dual[T]) MinFiltrationIndex() int { return d.forward.MinFiltrationIndex() }

func (d *Dual[T]) MaxFiltrationIndex() int { return d.forward.MaxFiltrationIndex() }
