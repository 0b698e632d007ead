// SPDX-License-Identifier: MIT

package derived

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/storage"
	"github.com/katalvlaran/plexus/stream"
)

// Tensor is the product complex A⊗B.
type Tensor[T, U basis.Element] struct {
	a     stream.Stream[T]
	b     stream.Stream[U]
	store storage.Strategy[basis.Pair[T, U]]
	dim   func(basis.Pair[T, U]) int
}

// NewTensor builds A⊗B, finalizing both inputs first.
//
// Implementation:
//   - Stage 1: finalize a and b.
//   - Stage 2: insert every pair (x, y) at max(f(x), f(y)).
//   - Stage 3: seal with the lexicographic pair order.
//
// Complexity: O(|A|·|B|) pairs plus the storage seal cost.
func NewTensor[T, U basis.Element](a stream.Stream[T], b stream.Stream[U], opts ...Option) *Tensor[T, U] {
	t := &Tensor[T, U]{a: a, b: b}
	t.dim = func(p basis.Pair[T, U]) int { return a.Dimension(p.First) + b.Dimension(p.Second) }
	t.build(newConfig(opts...), "tensor")

	return t
}

func (t *Tensor[T, U]) build(cfg config, kind string) {
	t.a.Finalize()
	t.b.Finalize()

	cmp := basis.ComparePairs(t.a.Compare, t.b.Compare)
	if cfg.bucketed {
		t.store = storage.NewBucketed(cmp, t.dim)
	} else {
		t.store = storage.NewSorted(cmp)
	}

	for x := range t.a.All() {
		fx, _ := t.a.FiltrationIndex(x)
		for y := range t.b.All() {
			fy, _ := t.b.FiltrationIndex(y)
			// the store is open here, so Add cannot fail
			_ = t.store.Add(basis.NewPair(x, y), max(fx, fy))
		}
	}
	t.store.Finalize()

	cfg.logger.Debug("derived: product built",
		slog.String("kind", kind),
		slog.Int("left", t.a.Size()),
		slog.Int("right", t.b.Size()),
		slog.Int("size", t.store.Len()))
}

// Left and Right return the factor streams.
func (t *Tensor[T, U]) Left() stream.Stream[T] { return t.a }

func (t *Tensor[T, U]) Right() stream.Stream[U] { return t.b }

func (t *Tensor[T, U]) All() iter.Seq[basis.Pair[T, U]] { return t.store.All() }

func (t *Tensor[T, U]) FiltrationIndex(p basis.Pair[T, U]) (int, error) {
	idx, ok := t.store.FiltrationIndex(p)
	if !ok {
		return 0, fmt.Errorf("Tensor.FiltrationIndex(%s): %w", p.Key(), stream.ErrNotFound)
	}

	return idx, nil
}

// Boundary returns [(∂x_i, y)…] followed by [(x, ∂y_j)…].
func (t *Tensor[T, U]) Boundary(p basis.Pair[T, U]) []basis.Pair[T, U] {
	faces, _ := t.leibniz(p)

	return faces
}

// BoundaryCoefficients returns [c_i…] followed by [(-1)^dim(x)·c_j…].
func (t *Tensor[T, U]) BoundaryCoefficients(p basis.Pair[T, U]) []int {
	_, coeffs := t.leibniz(p)

	return coeffs
}

func (t *Tensor[T, U]) leibniz(p basis.Pair[T, U]) ([]basis.Pair[T, U], []int) {
	return basis.Leibniz(
		p.First, t.a.Dimension(p.First), t.a.Boundary(p.First), t.a.BoundaryCoefficients(p.First),
		p.Second, t.b.Boundary(p.Second), t.b.BoundaryCoefficients(p.Second),
	)
}

func (t *Tensor[T, U]) Dimension(p basis.Pair[T, U]) int { return t.dim(p) }

func (t *Tensor[T, U]) Size() int { return t.store.Len() }

func (t *Tensor[T, U]) Contains(p basis.Pair[T, U]) bool { return t.store.Contains(p) }

// Finalize is a no-op; a Tensor is sealed on construction.
func (t *Tensor[T, U]) Finalize() {}

func (t *Tensor[T, U]) Finalized() bool { return true }

func (t *Tensor[T, U]) Compare(x, y basis.Pair[T, U]) int { return t.store.Compare(x, y) }

func (t *Tensor[T, U]) MinFiltrationIndex() int { return t.store.MinFiltrationIndex() }

func (t *Tensor[T, U]) MaxFiltrationIndex() int { return t.store.MaxFiltrationIndex() }
