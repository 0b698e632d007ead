// SPDX-License-Identifier: MIT

// Package graph provides the undirected weighted neighbor graph that sits
// between a point cloud and a flag complex.
//
// Vertices are the integers 0..n-1 fixed at construction; edges carry a
// non-negative finite weight (a distance or an appearance value). For each
// vertex the graph also keeps its lower neighbors, the adjacent vertices
// with a smaller index, as a roaring bitmap. Clique expansion intersects
// those bitmaps to enumerate every simplex exactly once, from its largest
// vertex down.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Mutations take the write lock,
//	queries the read lock, so a graph can be filled from parallel
//	neighborhood queries and read afterwards without extra care.
//
// Determinism:
//
//	Neighbors, Edges and Components return sorted results regardless of
//	insertion order.
//
// Components(r) runs a breadth-first search over edges of weight ≤ r; on a
// Vietoris–Rips neighbor graph it counts the clusters at scale r.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside 0..n-1.
//	ErrLoop             - edge from a vertex to itself.
//	ErrBadWeight        - negative, NaN or infinite weight.
//	ErrNegativeSize     - New called with n < 0.
package graph
