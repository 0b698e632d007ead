package derived_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/stream"
)

type entry struct {
	vertices []int
	index    int
}

// filteredTriangle: vertices 1,2,3 at 1,2,3, edges at 4,5,6, face at 7.
var filteredTriangle = []entry{
	{[]int{1}, 1}, {[]int{2}, 2}, {[]int{3}, 3},
	{[]int{1, 2}, 4}, {[]int{2, 3}, 5}, {[]int{1, 3}, 6},
	{[]int{1, 2, 3}, 7},
}

var zomorodianCarlsson = []entry{
	{[]int{0}, 0}, {[]int{1}, 0}, {[]int{2}, 1}, {[]int{3}, 1},
	{[]int{0, 1}, 1}, {[]int{1, 2}, 1}, {[]int{2, 3}, 2}, {[]int{0, 3}, 2},
	{[]int{0, 2}, 3}, {[]int{0, 1, 2}, 4}, {[]int{0, 2, 3}, 5},
}

func simplicial(t *testing.T, entries []entry, opts ...stream.Option) *stream.Explicit[basis.Simplex] {
	t.Helper()
	s := stream.NewSimplexStream(opts...)
	for _, e := range entries {
		require.NoError(t, s.AddElement(basis.NewSimplex(e.vertices...), e.index))
	}

	return s
}

// boundarySquared accumulates ∂∂e in s, keyed by element key.
func boundarySquared[T basis.Element](s stream.Stream[T], e T) map[string]int {
	acc := make(map[string]int)
	coeffs := s.BoundaryCoefficients(e)
	for i, face := range s.Boundary(e) {
		inner := s.BoundaryCoefficients(face)
		for j, ff := range s.Boundary(face) {
			acc[ff.Key()] += coeffs[i] * inner[j]
		}
	}

	return acc
}

func requireChainComplex[T basis.Element](t *testing.T, s stream.Stream[T]) {
	t.Helper()
	for e := range s.All() {
		for key, c := range boundarySquared(s, e) {
			require.Zerof(t, c, "∂∂%s has %d·%s", e.Key(), c, key)
		}
	}
}

// requireIncreasing checks that s yields by filtration index, breaking ties
// strictly increasing under s.Compare.
func requireIncreasing[T basis.Element](t *testing.T, s stream.Stream[T]) {
	t.Helper()
	elems := stream.Elements(s)
	for i := 1; i < len(elems); i++ {
		prev, err := s.FiltrationIndex(elems[i-1])
		require.NoError(t, err)
		cur, err := s.FiltrationIndex(elems[i])
		require.NoError(t, err)
		require.LessOrEqual(t, prev, cur)
		if prev == cur {
			require.Negativef(t, s.Compare(elems[i-1], elems[i]), "%s before %s", elems[i-1].Key(), elems[i].Key())
		}
	}
}

func indexMap[T basis.Element](t *testing.T, s stream.Stream[T]) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for e := range s.All() {
		idx, err := s.FiltrationIndex(e)
		require.NoError(t, err)
		out[e.Key()] = idx
	}

	return out
}

// boundaryMultiset renders the signed boundary of e in s as key -> coefficient sum.
func boundaryMultiset[T basis.Element](s stream.Stream[T], e T) map[string]int {
	out := make(map[string]int)
	coeffs := s.BoundaryCoefficients(e)
	for i, face := range s.Boundary(e) {
		out[face.Key()] += coeffs[i]
	}

	return out
}
