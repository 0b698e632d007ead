// SPDX-License-Identifier: MIT

package derived

import (
	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

// Hom is the complex of graded maps from a domain to a codomain complex,
// realised as Dual(domain)⊗codomain with dimension dim(y) - dim(x).
//
// Its order is the domain order reversed, then the codomain order.
type Hom[T, U basis.Element] struct {
	*Tensor[T, U]
	dual *Dual[T]
}

// NewHom builds Hom(domain, codomain), finalizing both inputs first.
func NewHom[T, U basis.Element](domain stream.Stream[T], codomain stream.Stream[U], opts ...Option) *Hom[T, U] {
	dual := NewDual(domain)
	t := &Tensor[T, U]{a: dual, b: codomain}
	t.dim = func(p basis.Pair[T, U]) int { return codomain.Dimension(p.Second) - domain.Dimension(p.First) }
	t.build(newConfig(opts...), "hom")

	return &Hom[T, U]{Tensor: t, dual: dual}
}

// Domain returns the dual of the domain stream, the left factor of h.
func (h *Hom[T, U]) Domain() *Dual[T] { return h.dual }

// Degree returns the elements of h of degree k, in iteration order.
func (h *Hom[T, U]) Degree(k int) []basis.Pair[T, U] {
	return stream.Skeleton[basis.Pair[T, U]](h, k)
}

// Homotopies returns the degree -1 elements: the generators of chain
// homotopies between maps from domain to codomain.
func (h *Hom[T, U]) Homotopies() []basis.Pair[T, U] { return h.Degree(-1) }

// ChainMaps returns the degree 0 elements: the generators of chain maps.
func (h *Hom[T, U]) ChainMaps() []basis.Pair[T, U] { return h.Degree(0) }
