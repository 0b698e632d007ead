// SPDX-License-Identifier: MIT

package geometric

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/graph"
	"github.com/katalvlaran/plexus/metric"
	"github.com/katalvlaran/plexus/stream"
)

var tracer = otel.Tracer("plexus.geometric")

// VietorisRips returns the sealed Vietoris–Rips stream of space: every set of
// at most maxDimension+1 points with pairwise distance ≤ maxDistance is a
// simplex, appearing at its longest edge. Vertices appear at the converter's
// initial value. The default converter spreads 20 divisions over
// [0, maxDistance].
//
// Ball queries run on up to WithWorkers goroutines; ctx is checked between
// points.
func VietorisRips(ctx context.Context, space metric.Searchable, maxDistance float64, maxDimension int, opts ...Option) (*stream.Explicit[basis.Simplex], error) {
	ctx, span := tracer.Start(ctx, "geometric.VietorisRips", trace.WithAttributes(
		attribute.Int("points", space.Size()),
		attribute.Float64("max_distance", maxDistance),
		attribute.Int("max_dimension", maxDimension),
	))
	defer span.End()

	s, err := vietorisRips(ctx, space, maxDistance, maxDimension, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("simplices", s.Size()))
	span.SetStatus(codes.Ok, "")

	return s, nil
}

func vietorisRips(ctx context.Context, space metric.Searchable, maxDistance float64, maxDimension int, opts ...Option) (*stream.Explicit[basis.Simplex], error) {
	if maxDimension < 0 {
		return nil, fmt.Errorf("VietorisRips: maxDimension=%d: %w", maxDimension, ErrBadDimension)
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return nil, fmt.Errorf("VietorisRips: maxDistance=%g: %w", maxDistance, ErrBadDistance)
	}
	cfg := newConfig(opts...)
	conv, err := cfg.converterFor(maxDistance)
	if err != nil {
		return nil, fmt.Errorf("VietorisRips: %w", err)
	}

	g, err := NeighborGraph(ctx, space, maxDistance, opts...)
	if err != nil {
		return nil, err
	}
	s, err := expand(ctx, g, maxDimension, conv, nil, cfg)
	if err != nil {
		return nil, fmt.Errorf("VietorisRips: %w", err)
	}
	cfg.logger.Debug("geometric: vietoris-rips built",
		slog.Int("points", space.Size()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("simplices", s.Size()),
		slog.Float64("max_distance", maxDistance))

	return s, nil
}

// NeighborGraph returns the graph on space's points with an edge {i, j},
// weighted by their distance, whenever that distance is ≤ maxDistance.
// Ball queries run on up to WithWorkers goroutines; the first error or a
// cancelled ctx stops the remaining queries.
func NeighborGraph(ctx context.Context, space metric.Searchable, maxDistance float64, opts ...Option) (*graph.Graph, error) {
	if maxDistance < 0 || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return nil, fmt.Errorf("NeighborGraph: maxDistance=%g: %w", maxDistance, ErrBadDistance)
	}
	cfg := newConfig(opts...)
	n := space.Size()
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("NeighborGraph: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := range n {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			p, err := space.Point(i)
			if err != nil {
				return err
			}
			ball, err := space.NeighborhoodBitmap(p, maxDistance, false)
			if err != nil {
				return err
			}
			// Each edge is added once, by its smaller endpoint.
			ball.RemoveRange(0, uint64(i)+1)
			for it := ball.Iterator(); it.HasNext(); {
				j := int(it.Next())
				d, err := space.Distance(i, j)
				if err != nil {
					return err
				}
				if err := g.AddEdge(i, j, d); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("NeighborGraph: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("NeighborGraph: %w", err)
	}

	return g, nil
}
