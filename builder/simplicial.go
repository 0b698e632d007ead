// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

// filteredSimplex is one fixture row: a vertex list and its filtration index.
type filteredSimplex struct {
	vertices []int
	index    int
}

// mustAdd inserts into a stream this package just opened; failure is a
// programming error.
func mustAdd[T basis.Primitive[T]](s *stream.Explicit[T], e T, index int) {
	if err := s.AddElement(e, index); err != nil {
		panic(err)
	}
}

func simplicialStream(cfg builderConfig, rows []filteredSimplex) *stream.Explicit[basis.Simplex] {
	s := stream.NewSimplexStream(cfg.streamOpts...)
	for _, r := range rows {
		mustAdd(s, basis.NewSimplex(r.vertices...), r.index)
	}
	s.Finalize()

	return s
}

// SimplicialSphere returns the boundary of the (d+1)-simplex on vertices
// 0..d+1, every face at index 0. d must be ≥ 0.
// Complexity: O(2^(d+2)) simplices.
func SimplicialSphere(d int, opts ...BuilderOption) (*stream.Explicit[basis.Simplex], error) {
	if d < 0 {
		return nil, builderErrorf(MethodSimplicialSphere, "d=%d", ErrTooFewVertices, d)
	}
	cfg := newBuilderConfig(opts...)

	vs := make([]int, d+2)
	for i := range vs {
		vs[i] = i
	}
	top := basis.NewSimplex(vs...)

	s := stream.NewSimplexStream(cfg.streamOpts...)
	mustAdd(s, top, 0)
	if err := s.EnsureAllFaces(); err != nil {
		panic(err)
	}
	if _, err := s.RemoveElement(top); err != nil {
		panic(err)
	}
	s.Finalize()

	return s, nil
}

// Triangle returns the hollow triangle, the simplicial 1-sphere.
func Triangle(opts ...BuilderOption) *stream.Explicit[basis.Simplex] {
	s, _ := SimplicialSphere(1, opts...)
	return s
}

// Tetrahedron returns the hollow tetrahedron, the simplicial 2-sphere.
func Tetrahedron(opts ...BuilderOption) *stream.Explicit[basis.Simplex] {
	s, _ := SimplicialSphere(2, opts...)
	return s
}

// Circle returns the m-gon with vertices 0..m-1 and edges {i, i+1 mod m},
// all at index 0. m must be ≥ MinCircleVertices.
func Circle(m int, opts ...BuilderOption) (*stream.Explicit[basis.Simplex], error) {
	if m < MinCircleVertices {
		return nil, builderErrorf(MethodCircle, "m=%d", ErrTooFewVertices, m)
	}
	rows := make([]filteredSimplex, 0, 2*m)
	for i := range m {
		rows = append(rows,
			filteredSimplex{[]int{i}, 0},
			filteredSimplex{[]int{i, (i + 1) % m}, 0})
	}

	return simplicialStream(newBuilderConfig(opts...), rows), nil
}

// torusTriangles triangulates the torus on vertices 1..9 as a 3×3 grid with
// opposite sides identified.
var torusTriangles = [][3]int{
	{1, 2, 4}, {2, 4, 5}, {2, 3, 5}, {3, 5, 6}, {1, 4, 6}, {1, 3, 6},
	{4, 5, 7}, {5, 7, 8}, {5, 6, 8}, {6, 8, 9}, {4, 7, 9}, {4, 6, 9},
	{7, 8, 1}, {8, 1, 2}, {8, 9, 2}, {9, 2, 3}, {7, 1, 3}, {7, 9, 3},
}

// Torus returns a minimal-grid triangulation of the torus: 9 vertices,
// 27 edges and 18 triangles, all at index 0.
func Torus(opts ...BuilderOption) *stream.Explicit[basis.Simplex] {
	cfg := newBuilderConfig(opts...)
	s := stream.NewSimplexStream(cfg.streamOpts...)
	for _, tri := range torusTriangles {
		mustAdd(s, basis.NewSimplex(tri[:]...), 0)
	}
	if err := s.EnsureAllFaces(); err != nil {
		panic(err)
	}
	s.Finalize()

	return s
}

// FilteredTriangle returns a triangle filled in one simplex per index:
// vertices 1,2,3 at 1,2,3, edges [1,2],[2,3],[1,3] at 4,5,6, face at 7.
func FilteredTriangle(opts ...BuilderOption) *stream.Explicit[basis.Simplex] {
	return simplicialStream(newBuilderConfig(opts...), []filteredSimplex{
		{[]int{1}, 1}, {[]int{2}, 2}, {[]int{3}, 3},
		{[]int{1, 2}, 4}, {[]int{2, 3}, 5}, {[]int{1, 3}, 6},
		{[]int{1, 2, 3}, 7},
	})
}

// ZomorodianCarlsson returns the running example of Zomorodian and Carlsson,
// "Computing Persistent Homology": a square 0-1-2-3 with diagonal [0,2],
// filled by two triangles at indices 4 and 5.
func ZomorodianCarlsson(opts ...BuilderOption) *stream.Explicit[basis.Simplex] {
	return simplicialStream(newBuilderConfig(opts...), []filteredSimplex{
		{[]int{0}, 0}, {[]int{1}, 0},
		{[]int{2}, 1}, {[]int{3}, 1}, {[]int{0, 1}, 1}, {[]int{1, 2}, 1},
		{[]int{2, 3}, 2}, {[]int{0, 3}, 2},
		{[]int{0, 2}, 3},
		{[]int{0, 1, 2}, 4},
		{[]int{0, 2, 3}, 5},
	})
}
