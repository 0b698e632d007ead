// SPDX-License-Identifier: MIT

// File: types.go
// Role: Graph and Edge types, sentinel errors, constructor.

package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoop indicates an edge whose endpoints coincide.
	ErrLoop = errors.New("graph: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: bad edge weight")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("graph: negative vertex count")
)

// Edge is an undirected weighted edge with I < J.
type Edge struct {
	I, J   int
	Weight float64
}

// Graph is an undirected weighted graph on the vertices 0..n-1.
type Graph struct {
	mu    sync.RWMutex
	adj   []map[int]float64 // adj[v][u] = weight of {u,v}
	lower []*roaring.Bitmap // lower[v] = {u ∈ adj[v] : u < v}
	edges int
}

// New returns an edgeless graph on n vertices.
//
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graph.New(%d): %w", n, ErrNegativeSize)
	}
	g := &Graph{
		adj:   make([]map[int]float64, n),
		lower: make([]*roaring.Bitmap, n),
	}
	for v := range n {
		g.adj[v] = make(map[int]float64)
		g.lower[v] = roaring.New()
	}

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// checkVertex reports ErrVertexOutOfRange for v ∉ [0,n). Caller holds a lock
// or relies on n being immutable.
func (g *Graph) checkVertex(op string, v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%s: vertex %d of %d: %w", op, v, len(g.adj), ErrVertexOutOfRange)
	}

	return nil
}
