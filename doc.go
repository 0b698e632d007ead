// SPDX-License-Identifier: MIT

// Package plexus is an in-memory toolkit for building filtered chain
// complexes, the input of persistent homology, from combinatorial and
// geometric data.
//
// 🚀 What is plexus?
//
//	A generic, dependency-light library that brings together:
//		• Basis elements: simplices, cells with attaching degrees, pairs
//		• Filtered streams: explicit simplicial and cellular complexes,
//		  sorted or bucketed storage, face completion
//		• Derived complexes: dual (coboundary), tensor product, Hom, truncation
//		• Geometry: k-d tree, metric spaces, landmark selection
//		• Constructions: Vietoris–Rips, lazy witness and flag complexes
//		• Boundary matrices and the ∂∂ = 0 check
//
// ✨ Why choose plexus?
//
//   - One contract – every complex implements stream.Stream[T]
//   - Deterministic – filtration order is (index, element order), always
//   - Parallel where it pays – neighbor graphs are filled by errgroup workers
//   - Observable – OpenTelemetry spans and slog summaries on constructions
//
// Packages:
//
//	basis/      - Element, Simplex, Cell + Arena, Pair, comparators, Leibniz rule
//	filtration/ - value ↔ index converters (IncreasingLinear, External, Identity)
//	storage/    - Sorted and Bucketed storage strategies
//	stream/     - Stream contract, Explicit and CellStream, skeleton utilities
//	derived/    - Dual, Tensor, Hom, Truncated
//	kdtree/     - k-d tree: nearest neighbor, k-NN, ε-balls (slices or roaring bitmaps)
//	metric/     - Euclidean and Matrix spaces, MaxMin and random landmarks
//	graph/      - weighted neighbor graph with roaring lower-neighbor sets
//	geometric/  - VietorisRips, LazyWitness, FlagComplex, NeighborGraph
//	matrix/     - Dense boundary matrices
//	builder/    - fixture complexes and point clouds
//
// Quick ASCII example (builder.Square at radius 1.01):
//
//	    1───3
//	    │   │
//	    0───2
//
//	4 vertices, 4 edges and no triangles: one loop is born.
//
//	go get github.com/katalvlaran/plexus
package plexus
