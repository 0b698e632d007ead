// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/Weight/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (I, J).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package graph

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// AddEdge inserts the undirected edge {i, j} with weight w. Adding an edge
// that already exists overwrites its weight.
//
// Steps:
//  1. Validate endpoints, loop and weight.
//  2. Under the write lock, store w in both adjacency maps and mark the
//     smaller endpoint as a lower neighbor of the larger.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int, w float64) error {
	if err := g.checkVertex("AddEdge", i); err != nil {
		return err
	}
	if err := g.checkVertex("AddEdge", j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrLoop)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d,%d): weight %g: %w", i, j, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[i][j]; !exists {
		g.edges++
	}
	g.adj[i][j] = w
	g.adj[j][i] = w
	lo, hi := min(i, j), max(i, j)
	g.lower[hi].Add(uint32(lo))

	return nil
}

// Weight returns the weight of {i, j} and whether the edge exists.
func (g *Graph) Weight(i, j int) (float64, bool) {
	if i < 0 || i >= len(g.adj) {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[i][j]

	return w, ok
}

// HasEdge reports whether {i, j} is an edge.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.Weight(i, j)

	return ok
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, with I < J, sorted by (I, J).
//
// Complexity: O(m log m).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for i, nbrs := range g.adj {
		for j, w := range nbrs {
			if i < j {
				out = append(out, Edge{I: i, J: j, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}

		return cmp.Compare(a.J, b.J)
	})

	return out
}
