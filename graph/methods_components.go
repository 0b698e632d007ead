// SPDX-License-Identifier: MIT

// File: methods_components.go
// Role: Connected components by breadth-first search.
// Determinism:
//   - Components are ordered by their smallest vertex; each is ascending.
// Concurrency:
//   - Holds the read lock for the whole traversal.

package graph

import "slices"

// Components returns the connected components of g restricted to edges of
// weight ≤ maxWeight. Isolated vertices are singleton components. At a
// Vietoris–Rips scale r, Components(r) on the neighbor graph gives the
// 0-dimensional homology classes alive at r.
//
// Complexity: O(V + E).
func (g *Graph) Components(maxWeight float64) [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := make([]bool, len(g.adj))
	queue := make([]int, 0, len(g.adj))
	var out [][]int
	for root := range g.adj {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for u, w := range g.adj[queue[head]] {
				if visited[u] || w > maxWeight {
					continue
				}
				visited[u] = true
				queue = append(queue, u)
			}
		}
		comp := slices.Clone(queue)
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
