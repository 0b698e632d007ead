// SPDX-License-Identifier: MIT

package basis

import (
	"slices"
	"strconv"
)

// Simplex is a combinatorial simplex: a sorted, duplicate-free list of
// vertex indices. Simplex is a value type; two simplices are equal when
// their vertex lists are equal.
//
// The zero value is the empty simplex (dimension -1).
type Simplex struct {
	vertices []int
	key      string
}

// NewSimplex builds a simplex from the given vertex indices.
// The indices are copied, sorted and deduplicated.
//
// Vertex indices must be non-negative; this is a precondition and is not checked.
func NewSimplex(vertices ...int) Simplex {
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)

	return newSortedSimplex(vs)
}

// newSortedSimplex wraps an already sorted, deduplicated slice without copying.
func newSortedSimplex(vs []int) Simplex {
	return Simplex{vertices: vs, key: simplexKey(vs)}
}

func simplexKey(vs []int) string {
	buf := make([]byte, 0, 2+4*len(vs))
	buf = append(buf, '[')
	for i, v := range vs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	buf = append(buf, ']')

	return string(buf)
}

// Dimension returns len(vertices)-1.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// Key returns the canonical form "[v0,v1,…]".
func (s Simplex) Key() string {
	if s.key == "" {
		return "[]"
	}

	return s.key
}

// String implements fmt.Stringer.
func (s Simplex) String() string { return s.Key() }

// Vertices returns a copy of the sorted vertex indices.
func (s Simplex) Vertices() []int { return slices.Clone(s.vertices) }

// Vertex returns the i-th smallest vertex index. It panics if i is out of range.
func (s Simplex) Vertex(i int) int { return s.vertices[i] }

// Len returns the number of vertices.
func (s Simplex) Len() int { return len(s.vertices) }

// Equal reports whether s and t have the same vertices.
func (s Simplex) Equal(t Simplex) bool { return slices.Equal(s.vertices, t.vertices) }

// Contains reports whether v is a vertex of s.
func (s Simplex) Contains(v int) bool {
	_, found := slices.BinarySearch(s.vertices, v)

	return found
}

// With returns the simplex spanned by s and the extra vertex v.
func (s Simplex) With(v int) Simplex {
	pos, found := slices.BinarySearch(s.vertices, v)
	if found {
		return s
	}
	vs := make([]int, 0, len(s.vertices)+1)
	vs = append(vs, s.vertices[:pos]...)
	vs = append(vs, v)
	vs = append(vs, s.vertices[pos:]...)

	return newSortedSimplex(vs)
}

// Boundary returns the codimension-1 faces of s in index-deletion order:
// face i is s with its i-th vertex removed.
//
// A 0-simplex has an empty boundary.
//
// Complexity: O(k²) for a k-simplex.
func (s Simplex) Boundary() []Simplex {
	n := len(s.vertices)
	if n <= 1 {
		return []Simplex{}
	}

	faces := make([]Simplex, n)
	for i := range n {
		vs := make([]int, 0, n-1)
		vs = append(vs, s.vertices[:i]...)
		vs = append(vs, s.vertices[i+1:]...)
		faces[i] = newSortedSimplex(vs)
	}

	return faces
}

// BoundaryCoefficients returns [+1, -1, +1, …], aligned with Boundary.
func (s Simplex) BoundaryCoefficients() []int {
	n := len(s.vertices)
	if n <= 1 {
		return []int{}
	}

	return alternatingSigns(n)
}
