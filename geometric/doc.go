// SPDX-License-Identifier: MIT

// Package geometric builds filtered flag complexes from metric data.
//
// Every construction has two phases:
//
//  1. Neighbor graph: an undirected weighted graph.Graph whose edge weights
//     are the values at which edges appear.
//  2. Flag expansion: every clique of the graph, up to a maximum dimension,
//     becomes a simplex. A simplex appears at the largest weight among its
//     edges, converted to a filtration index by a filtration.Converter.
//
// Expansion is incremental: a simplex τ with candidate set N (common lower
// neighbors of its vertices) adds τ∪{v} for each v ∈ N and recurses with
// N ∩ lower(v). Candidate sets are roaring bitmaps, so the intersection is a
// single And. Each clique is generated exactly once, from its largest vertex
// down.
//
// Constructions:
//
//	VietorisRips  edges between points at distance ≤ r; the neighbor graph
//	              is filled by parallel ball queries on a Searchable space
//	LazyWitness   edges between landmarks witnessed by nearby points
//	FlagComplex   the clique complex of a caller-supplied graph
//
// Streams are returned sealed. VietorisRips and LazyWitness honor context
// cancellation between per-point tasks, record an OpenTelemetry span and log
// a debug summary.
package geometric
