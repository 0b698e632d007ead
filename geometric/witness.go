// SPDX-License-Identifier: MIT

package geometric

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/graph"
	"github.com/katalvlaran/plexus/metric"
	"github.com/katalvlaran/plexus/stream"
)

// LazyWitness returns the sealed lazy witness stream of space over the given
// landmarks (indices into space, all distinct).
//
// With D[l][n] the distance from landmark l to point n, and m[n] the ν-th
// smallest of D[·][n] (m[n] = 0 when ν = 0), landmarks a and b are joined at
//
//	e(a,b) = min over n of max(0, max(D[a][n], D[b][n]) − m[n])
//
// whenever e(a,b) ≤ maxDistance. Higher simplices are the cliques of that
// graph. Simplices are reported in the original point indices of space.
func LazyWitness(ctx context.Context, space metric.Space, landmarks []int, maxDistance float64, maxDimension, nu int, opts ...Option) (*stream.Explicit[basis.Simplex], error) {
	ctx, span := tracer.Start(ctx, "geometric.LazyWitness", trace.WithAttributes(
		attribute.Int("points", space.Size()),
		attribute.Int("landmarks", len(landmarks)),
		attribute.Float64("max_distance", maxDistance),
		attribute.Int("max_dimension", maxDimension),
		attribute.Int("nu", nu),
	))
	defer span.End()

	s, err := lazyWitness(ctx, space, landmarks, maxDistance, maxDimension, nu, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("simplices", s.Size()))
	span.SetStatus(codes.Ok, "")

	return s, nil
}

func lazyWitness(ctx context.Context, space metric.Space, landmarks []int, maxDistance float64, maxDimension, nu int, opts ...Option) (*stream.Explicit[basis.Simplex], error) {
	if len(landmarks) == 0 {
		return nil, fmt.Errorf("LazyWitness: %w", ErrNoLandmarks)
	}
	if maxDimension < 0 {
		return nil, fmt.Errorf("LazyWitness: maxDimension=%d: %w", maxDimension, ErrBadDimension)
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return nil, fmt.Errorf("LazyWitness: maxDistance=%g: %w", maxDistance, ErrBadDistance)
	}
	if nu < 0 || nu > len(landmarks) {
		return nil, fmt.Errorf("LazyWitness: nu=%d with %d landmarks: %w", nu, len(landmarks), ErrBadNu)
	}
	n := space.Size()
	seen := make(map[int]bool, len(landmarks))
	for _, l := range landmarks {
		if l < 0 || l >= n {
			return nil, fmt.Errorf("LazyWitness: landmark %d: %w", l, metric.ErrOutOfRange)
		}
		if seen[l] {
			return nil, fmt.Errorf("LazyWitness: landmark %d: %w", l, ErrDuplicateLandmark)
		}
		seen[l] = true
	}
	cfg := newConfig(opts...)
	conv, err := cfg.converterFor(maxDistance)
	if err != nil {
		return nil, fmt.Errorf("LazyWitness: %w", err)
	}

	dist, err := landmarkDistances(ctx, space, landmarks, cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("LazyWitness: %w", err)
	}
	g, err := witnessGraph(ctx, dist, witnessOffsets(dist, n, nu), maxDistance, cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("LazyWitness: %w", err)
	}
	s, err := expand(ctx, g, maxDimension, conv, landmarks, cfg)
	if err != nil {
		return nil, fmt.Errorf("LazyWitness: %w", err)
	}
	cfg.logger.Debug("geometric: lazy witness built",
		slog.Int("points", n),
		slog.Int("landmarks", len(landmarks)),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("simplices", s.Size()),
		slog.Int("nu", nu))

	return s, nil
}

// landmarkDistances returns D[l][n], one row per landmark.
func landmarkDistances(ctx context.Context, space metric.Space, landmarks []int, workers int) ([][]float64, error) {
	n := space.Size()
	dist := make([][]float64, len(landmarks))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for l, p := range landmarks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			row := make([]float64, n)
			for q := range n {
				d, err := space.Distance(p, q)
				if err != nil {
					return err
				}
				row[q] = d
			}
			dist[l] = row

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return dist, nil
}

// witnessOffsets returns m[n], the ν-th smallest landmark distance of each
// point, or all zeros when ν = 0.
func witnessOffsets(dist [][]float64, n, nu int) []float64 {
	m := make([]float64, n)
	if nu == 0 {
		return m
	}
	col := make([]float64, len(dist))
	for q := range n {
		for l := range dist {
			col[l] = dist[l][q]
		}
		slices.Sort(col)
		m[q] = col[nu-1]
	}

	return m
}

// witnessGraph joins landmarks a < b whose witness value is ≤ maxDistance.
// Rows are processed in parallel; each task writes only edges of its row.
func witnessGraph(ctx context.Context, dist [][]float64, m []float64, maxDistance float64, workers int) (*graph.Graph, error) {
	g, err := graph.New(len(dist))
	if err != nil {
		return nil, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for a := range dist {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for b := a + 1; b < len(dist); b++ {
				e := math.Inf(1)
				for q, off := range m {
					e = min(e, max(0, max(dist[a][q], dist[b][q])-off))
				}
				if e > maxDistance {
					continue
				}
				if err := g.AddEdge(a, b, e); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
