package storage_test

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/storage"
)

func keys(seq func(func(basis.Simplex) bool)) []string {
	var out []string
	for s := range seq {
		out = append(out, s.Key())
	}

	return out
}

// StrategySuite runs the Strategy contract against one implementation.
type StrategySuite struct {
	suite.Suite
	fresh func() storage.Strategy[basis.Simplex]
}

func TestSorted(t *testing.T) {
	suite.Run(t, &StrategySuite{fresh: func() storage.Strategy[basis.Simplex] {
		return storage.NewSorted(basis.CompareSimplex)
	}})
}

func TestBucketed(t *testing.T) {
	suite.Run(t, &StrategySuite{fresh: func() storage.Strategy[basis.Simplex] {
		return storage.NewBucketed(basis.CompareSimplex, nil)
	}})
}

func (s *StrategySuite) TestOrderAfterSeal() {
	st := s.fresh()
	add := func(index int, vs ...int) {
		require.NoError(s.T(), st.Add(basis.NewSimplex(vs...), index))
	}
	add(2, 0, 1)
	add(0, 1)
	add(1, 2)
	add(0, 0)
	add(2, 3)
	add(1, 0, 2)
	require.False(s.T(), st.Finalized())
	st.Finalize()

	require.True(s.T(), st.Finalized())
	require.Equal(s.T(), []string{"[0]", "[1]", "[2]", "[0,2]", "[3]", "[0,1]"}, keys(st.All()))
}

func (s *StrategySuite) TestCompareAgreesWithOrder() {
	st := s.fresh()
	rng := rand.New(rand.NewSource(11))
	for range 120 {
		vs := make([]int, 1+rng.Intn(3))
		for i := range vs {
			vs[i] = rng.Intn(9)
		}
		require.NoError(s.T(), st.Update(basis.NewSimplex(vs...), rng.Intn(3)))
	}
	st.Finalize()

	var prev basis.Simplex
	prevIdx, first := 0, true
	for e := range st.All() {
		idx, _ := st.FiltrationIndex(e)
		if !first {
			require.LessOrEqual(s.T(), prevIdx, idx)
			if prevIdx == idx {
				require.Negative(s.T(), st.Compare(prev, e), "%s before %s", prev, e)
			}
		}
		prev, prevIdx, first = e, idx, false
	}
}

func (s *StrategySuite) TestReAddReplacesIndex() {
	st := s.fresh()
	e := basis.NewSimplex(3)
	require.NoError(s.T(), st.Add(e, 5))
	require.NoError(s.T(), st.Add(e, 1))
	require.NoError(s.T(), st.Update(basis.NewSimplex(3), 2))
	require.NoError(s.T(), st.Update(basis.NewSimplex(4), 0))

	idx, ok := st.FiltrationIndex(e)
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, idx)
	require.Equal(s.T(), 2, st.Len())
	require.Equal(s.T(), 0, st.MinFiltrationIndex())
	require.Equal(s.T(), 2, st.MaxFiltrationIndex())

	st.Finalize()
	require.Equal(s.T(), []string{"[4]", "[3]"}, keys(st.All()))
}

func (s *StrategySuite) TestRemove() {
	st := s.fresh()
	require.NoError(s.T(), st.Add(basis.NewSimplex(0), 0))
	require.NoError(s.T(), st.Add(basis.NewSimplex(1), 3))

	ok, err := st.Remove(basis.NewSimplex(1))
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	ok, err = st.Remove(basis.NewSimplex(1))
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	require.False(s.T(), st.Contains(basis.NewSimplex(1)))
	require.Equal(s.T(), 1, st.Len())
	require.Equal(s.T(), 0, st.MaxFiltrationIndex())
	st.Finalize()
	require.Equal(s.T(), []string{"[0]"}, keys(st.All()))
}

func (s *StrategySuite) TestSealedRejectsMutation() {
	st := s.fresh()
	require.NoError(s.T(), st.Add(basis.NewSimplex(0), 0))
	st.Finalize()
	st.Finalize()

	require.ErrorIs(s.T(), st.Add(basis.NewSimplex(1), 0), storage.ErrSealed)
	require.ErrorIs(s.T(), st.Update(basis.NewSimplex(0), 4), storage.ErrSealed)
	_, err := st.Remove(basis.NewSimplex(0))
	require.ErrorIs(s.T(), err, storage.ErrSealed)

	idx, ok := st.FiltrationIndex(basis.NewSimplex(0))
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, idx)
}

func (s *StrategySuite) TestEmpty() {
	st := s.fresh()
	require.Zero(s.T(), st.MinFiltrationIndex())
	st.Finalize()
	require.Zero(s.T(), st.Len())
	require.Zero(s.T(), st.MaxFiltrationIndex())
	require.Empty(s.T(), keys(st.All()))
}

func (s *StrategySuite) TestEarlyBreak() {
	st := s.fresh()
	for i := range 10 {
		require.NoError(s.T(), st.Add(basis.NewSimplex(i), i))
	}
	st.Finalize()

	n := 0
	for range st.All() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(s.T(), 3, n)
}

func (s *StrategySuite) TestConcurrentReaders() {
	st := s.fresh()
	rng := rand.New(rand.NewSource(3))
	for i := range 200 {
		require.NoError(s.T(), st.Add(basis.NewSimplex(i, i+1), rng.Intn(5)))
	}
	st.Finalize()

	want := keys(st.All())
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[g] = keys(st.All())
		}()
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(s.T(), want, got)
	}
}

func TestSortedAndBucketedAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	sorted := storage.NewSorted(basis.CompareSimplex)
	bucketed := storage.NewBucketed(basis.CompareSimplex, nil)
	for range 500 {
		n := 1 + rng.Intn(3)
		vs := make([]int, n)
		for i := range vs {
			vs[i] = rng.Intn(12)
		}
		s, idx := basis.NewSimplex(vs...), rng.Intn(6)
		require.NoError(t, sorted.Update(s, idx))
		require.NoError(t, bucketed.Update(s, idx))
		if rng.Intn(7) == 0 {
			_, _ = sorted.Remove(s)
			_, _ = bucketed.Remove(s)
		}
	}
	sorted.Finalize()
	bucketed.Finalize()

	require.Equal(t, sorted.Len(), bucketed.Len())
	require.Equal(t, keys(sorted.All()), keys(bucketed.All()))
	require.Equal(t, sorted.MinFiltrationIndex(), bucketed.MinFiltrationIndex())
	require.Equal(t, sorted.MaxFiltrationIndex(), bucketed.MaxFiltrationIndex())
}

func TestBucketed_CustomDimension(t *testing.T) {
	// regrade by negating the dimension: higher simplices come first
	st := storage.NewBucketed(basis.CompareSimplex, func(s basis.Simplex) int { return -s.Dimension() })
	require.NoError(t, st.Add(basis.NewSimplex(0), 0))
	require.NoError(t, st.Add(basis.NewSimplex(0, 1), 0))
	require.NoError(t, st.Update(basis.NewSimplex(0, 1), 0))
	st.Finalize()

	require.Equal(t, []string{"[0,1]", "[0]"}, keys(st.All()))
	require.Negative(t, st.Compare(basis.NewSimplex(0, 1), basis.NewSimplex(0)))
}

func TestBucketed_CompareIsDimensionFirst(t *testing.T) {
	// a comparator that ignores dimension entirely
	byKey := func(a, b basis.Simplex) int { return strings.Compare(a.Key(), b.Key()) }
	st := storage.NewBucketed(byKey, nil)
	require.NoError(t, st.Add(basis.NewSimplex(0, 1), 0))
	require.NoError(t, st.Add(basis.NewSimplex(2), 0))
	st.Finalize()

	require.Equal(t, []string{"[2]", "[0,1]"}, keys(st.All()))
	require.Positive(t, byKey(basis.NewSimplex(2), basis.NewSimplex(0, 1)))
	require.Negative(t, st.Compare(basis.NewSimplex(2), basis.NewSimplex(0, 1)))
}
