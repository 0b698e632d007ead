// SPDX-License-Identifier: MIT

package geometric

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/filtration"
	"github.com/katalvlaran/plexus/graph"
	"github.com/katalvlaran/plexus/stream"
)

// expander runs incremental flag expansion over one neighbor graph.
type expander struct {
	g      *graph.Graph
	lower  []*roaring.Bitmap
	maxDim int
	conv   filtration.Converter
	labels []int // vertex relabeling for output simplices; nil keeps indices
	out    *stream.Explicit[basis.Simplex]
}

func newExpander(g *graph.Graph, maxDim int, conv filtration.Converter, labels []int, out *stream.Explicit[basis.Simplex]) (*expander, error) {
	lower := make([]*roaring.Bitmap, g.VertexCount())
	for v := range lower {
		bm, err := g.LowerNeighbors(v)
		if err != nil {
			return nil, err
		}
		lower[v] = bm
	}

	return &expander{g: g, lower: lower, maxDim: maxDim, conv: conv, labels: labels, out: out}, nil
}

// run expands every vertex, checking ctx between vertices.
func (x *expander) run(ctx context.Context) error {
	for v := range x.lower {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := x.addCofaces(basis.NewSimplex(v), x.conv.Initial(), x.lower[v]); err != nil {
			return err
		}
	}

	return nil
}

// addCofaces inserts tau at value fv, then every clique tau∪{v}, v ∈ cand,
// with candidates narrowed to cand ∩ lower(v).
func (x *expander) addCofaces(tau basis.Simplex, fv float64, cand *roaring.Bitmap) error {
	if err := x.out.AddElement(x.relabel(tau), x.conv.Index(fv)); err != nil {
		return err
	}
	if tau.Dimension() >= x.maxDim {
		return nil
	}

	for it := cand.Iterator(); it.HasNext(); {
		v := int(it.Next())
		value := fv
		for k := range tau.Len() {
			w, _ := x.g.Weight(tau.Vertex(k), v)
			value = x.conv.Induced(value, w)
		}
		if err := x.addCofaces(tau.With(v), value, roaring.And(cand, x.lower[v])); err != nil {
			return err
		}
	}

	return nil
}

func (x *expander) relabel(s basis.Simplex) basis.Simplex {
	if x.labels == nil {
		return s
	}
	vs := s.Vertices()
	for i, v := range vs {
		vs[i] = x.labels[v]
	}

	return basis.NewSimplex(vs...)
}

// FlagComplex returns the sealed clique complex of g up to maxDimension.
// Vertices appear at the converter's initial value; a simplex appears at the
// largest weight among its edges. The default converter spreads 20 divisions
// over [0, largest edge weight].
func FlagComplex(g *graph.Graph, maxDimension int, opts ...Option) (*stream.Explicit[basis.Simplex], error) {
	if maxDimension < 0 {
		return nil, fmt.Errorf("FlagComplex: maxDimension=%d: %w", maxDimension, ErrBadDimension)
	}
	cfg := newConfig(opts...)

	var top float64
	for _, e := range g.Edges() {
		top = max(top, e.Weight)
	}
	conv, err := cfg.converterFor(top)
	if err != nil {
		return nil, fmt.Errorf("FlagComplex: %w", err)
	}

	s, err := expand(context.Background(), g, maxDimension, conv, nil, cfg)
	if err != nil {
		return nil, fmt.Errorf("FlagComplex: %w", err)
	}
	cfg.logger.Debug("geometric: flag complex built",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("simplices", s.Size()))

	return s, nil
}

// expand builds and seals the flag complex of g.
func expand(ctx context.Context, g *graph.Graph, maxDim int, conv filtration.Converter, labels []int, cfg config) (*stream.Explicit[basis.Simplex], error) {
	out := stream.NewSimplexStream(append(cfg.streamOpts, stream.WithConverter(conv), stream.WithLogger(cfg.logger))...)
	x, err := newExpander(g, maxDim, conv, labels, out)
	if err != nil {
		return nil, err
	}
	if err := x.run(ctx); err != nil {
		return nil, err
	}
	out.Finalize()

	return out, nil
}

// SkeletonGraph returns the 1-skeleton of a simplicial stream as a graph on
// 0..max vertex, weighted by the filtration index of each edge. Edges whose
// index is below minIndex are skipped.
func SkeletonGraph(s stream.Stream[basis.Simplex], minIndex int) (*graph.Graph, error) {
	top := -1
	for e := range s.All() {
		if s.Dimension(e) == 0 {
			top = max(top, e.Vertex(0))
		}
	}
	g, err := graph.New(top + 1)
	if err != nil {
		return nil, fmt.Errorf("SkeletonGraph: %w", err)
	}
	for e := range s.All() {
		if s.Dimension(e) != 1 {
			continue
		}
		idx, err := s.FiltrationIndex(e)
		if err != nil {
			return nil, fmt.Errorf("SkeletonGraph: %w", err)
		}
		if idx < minIndex {
			continue
		}
		if err := g.AddEdge(e.Vertex(0), e.Vertex(1), float64(idx)); err != nil {
			return nil, fmt.Errorf("SkeletonGraph: %w", err)
		}
	}

	return g, nil
}
