// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/LowerNeighbors/Degree.
// Determinism:
//   - Neighbors() returns vertex indices sorted ascending.
// Concurrency:
//   - Read lock only; returned slices and bitmaps are copies.

package graph

import (
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// Neighbors returns the vertices adjacent to v, ascending.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	g.mu.RUnlock()
	slices.Sort(out)

	return out, nil
}

// LowerNeighbors returns a copy of {u adjacent to v : u < v}.
func (g *Graph) LowerNeighbors(v int) (*roaring.Bitmap, error) {
	if err := g.checkVertex("LowerNeighbors", v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lower[v].Clone(), nil
}

// Degree returns the number of vertices adjacent to v.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}
