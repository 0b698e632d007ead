package derived_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/derived"
	"github.com/katalvlaran/plexus/stream"
)

type simplexPair = basis.Pair[basis.Simplex, basis.Simplex]

func TestTensor_SizeDimensionIndex(t *testing.T) {
	a := simplicial(t, filteredTriangle)
	b := simplicial(t, zomorodianCarlsson)
	ten := derived.NewTensor[basis.Simplex, basis.Simplex](a, b)

	require.True(t, a.Finalized())
	require.True(t, b.Finalized())
	require.Equal(t, a.Size()*b.Size(), ten.Size())

	n := 0
	for p := range ten.All() {
		n++
		fa, _ := a.FiltrationIndex(p.First)
		fb, _ := b.FiltrationIndex(p.Second)
		idx, err := ten.FiltrationIndex(p)
		require.NoError(t, err)
		require.Equal(t, max(fa, fb), idx)
		require.Equal(t, p.First.Dimension()+p.Second.Dimension(), ten.Dimension(p))
		for _, face := range ten.Boundary(p) {
			require.Equal(t, ten.Dimension(p)-1, ten.Dimension(face))
		}
	}
	require.Equal(t, ten.Size(), n)
	assert.True(t, stream.Validate[simplexPair](ten))
	assert.Equal(t, 1, ten.MinFiltrationIndex())
	assert.Equal(t, 7, ten.MaxFiltrationIndex())
	assert.Same(t, a, ten.Left())
	assert.Same(t, b, ten.Right())
}

func TestTensor_BoundarySquaredVanishes(t *testing.T) {
	a := simplicial(t, zomorodianCarlsson)
	b := simplicial(t, filteredTriangle)
	requireChainComplex[simplexPair](t, derived.NewTensor[basis.Simplex, basis.Simplex](a, b))
}

func TestTensor_LeibnizSigns(t *testing.T) {
	a := simplicial(t, filteredTriangle)
	ten := derived.NewTensor[basis.Simplex, basis.Simplex](a, a)
	p := basis.NewPair(basis.NewSimplex(1, 2), basis.NewSimplex(2, 3))

	faces := ten.Boundary(p)
	keys := make([]string, len(faces))
	for i, f := range faces {
		keys[i] = f.Key()
	}
	assert.Equal(t, []string{"([2],[2,3])", "([1],[2,3])", "([1,2],[3])", "([1,2],[2])"}, keys)
	assert.Equal(t, []int{1, -1, -1, 1}, ten.BoundaryCoefficients(p))
}

func TestTensor_OrderIsFiltrationThenLexicographic(t *testing.T) {
	ten := derived.NewTensor[basis.Simplex, basis.Simplex](
		simplicial(t, filteredTriangle), simplicial(t, filteredTriangle))
	requireIncreasing[simplexPair](t, ten)
}

func TestTensor_BucketedOrder(t *testing.T) {
	sorted := derived.NewTensor[basis.Simplex, basis.Simplex](
		simplicial(t, zomorodianCarlsson), simplicial(t, filteredTriangle))
	bucketed := derived.NewTensor[basis.Simplex, basis.Simplex](
		simplicial(t, zomorodianCarlsson), simplicial(t, filteredTriangle), derived.WithBucketedStorage())

	requireIncreasing[simplexPair](t, bucketed)
	assert.Equal(t, indexMap[simplexPair](t, sorted), indexMap[simplexPair](t, bucketed))
	assert.Equal(t, sorted.Size(), bucketed.Size())

	// ([0,2,3],[3]) and ([0,1,2],[2,3]) share index 5; the lower total
	// dimension comes first
	low := basis.NewPair(basis.NewSimplex(0, 2, 3), basis.NewSimplex(3))
	high := basis.NewPair(basis.NewSimplex(0, 1, 2), basis.NewSimplex(2, 3))
	require.True(t, bucketed.Contains(low))
	require.True(t, bucketed.Contains(high))
	assert.Negative(t, bucketed.Compare(low, high))
}

func TestTensor_NotFound(t *testing.T) {
	ten := derived.NewTensor[basis.Simplex, basis.Simplex](simplicial(t, filteredTriangle), simplicial(t, filteredTriangle))
	missing := basis.NewPair(basis.NewSimplex(9), basis.NewSimplex(1))

	_, err := ten.FiltrationIndex(missing)
	assert.ErrorIs(t, err, stream.ErrNotFound)
	assert.False(t, ten.Contains(missing))
}

func TestTensor_MixedCellAndSimplex(t *testing.T) {
	cs := stream.NewCellStream()
	v, _ := cs.AddVertex(0)
	_, err := cs.AttachToPoint(1, v, 1)
	require.NoError(t, err)

	ten := derived.NewTensor[*basis.Cell, basis.Simplex](cs, simplicial(t, filteredTriangle))
	assert.Equal(t, 2*7, ten.Size())
	requireChainComplex[basis.Pair[*basis.Cell, basis.Simplex]](t, ten)
}
