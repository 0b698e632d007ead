package kdtree_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/kdtree"
)

var unitSquare = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func randomPoints(rng *rand.Rand, n, d int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, d)
		for j := range pts[i] {
			pts[i][j] = rng.Float64()*2 - 1
		}
	}

	return pts
}

// gridPoints has many equal coordinates, which stresses median selection.
func gridPoints(side int) [][]float64 {
	pts := make([][]float64, 0, side*side)
	for x := range side {
		for y := range side {
			pts = append(pts, []float64{float64(x), float64(y)})
		}
	}

	return pts
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

func bruteBall(pts [][]float64, q []float64, eps float64, open bool) []int {
	out := []int{}
	for i, p := range pts {
		d := sqDist(q, p)
		if (open && d < eps*eps) || (!open && d <= eps*eps) {
			out = append(out, i)
		}
	}

	return out
}

func bruteNearestSq(pts [][]float64, q []float64) float64 {
	best := sqDist(q, pts[0])
	for _, p := range pts[1:] {
		best = min(best, sqDist(q, p))
	}

	return best
}

// TreeSuite runs every query check under both build strategies.
type TreeSuite struct {
	suite.Suite
	strategy kdtree.Strategy
}

func TestTreeSuite_PartitionIndices(t *testing.T) {
	suite.Run(t, &TreeSuite{strategy: kdtree.PartitionIndices})
}

func TestTreeSuite_PermutePoints(t *testing.T) {
	suite.Run(t, &TreeSuite{strategy: kdtree.PermutePoints})
}

func (s *TreeSuite) build(pts [][]float64, seed int64) *kdtree.Tree {
	tree, err := kdtree.New(pts, kdtree.WithStrategy(s.strategy), kdtree.WithSeed(seed))
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.strategy, tree.Strategy())

	return tree
}

func (s *TreeSuite) TestUnitSquare() {
	tree := s.build(unitSquare, 1)

	nn, err := tree.NearestNeighbor(unitSquare[0])
	require.NoError(s.T(), err)
	// the query coincides with point 0, which is not excluded
	require.Equal(s.T(), 0, nn)

	nbrs, err := tree.Neighborhood(unitSquare[0], 1.01, false)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2}, nbrs)
	require.NotContains(s.T(), nbrs, 3)

	// nearest other point: drop self from a 2-NN query
	knn, err := tree.NearestNeighbors(unitSquare[0], 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, knn[0])
	require.Contains(s.T(), []int{1, 2}, knn[1])
}

func (s *TreeSuite) TestUnitSquare_AdjacentCornersWithoutSelf() {
	tree := s.build(unitSquare, 3)

	nbrs, err := tree.Neighborhood(unitSquare[0], 1.01, false)
	require.NoError(s.T(), err)
	others := slices.DeleteFunc(nbrs, func(i int) bool { return i == 0 })
	require.Equal(s.T(), []int{1, 2}, others)
}

func (s *TreeSuite) TestNearestNeighbor_DistanceOverflow() {
	tree := s.build([][]float64{{0, 0}, {1, 0}, {0, 1}}, 4)

	// every squared distance overflows to +Inf; some point must still win
	nn, err := tree.NearestNeighbor([]float64{1e200, 0})
	require.NoError(s.T(), err)
	require.Contains(s.T(), []int{0, 1, 2}, nn)

	knn, err := tree.NearestNeighbors([]float64{1e200, 0}, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), knn, 2)
}

func (s *TreeSuite) TestUnitSquare_NearestFromOffsetQuery() {
	tree := s.build(unitSquare, 2)
	// slightly inside the square from corner 0: nearest is 0; excluding it,
	// the nearest of the remaining three is an adjacent corner
	nn, err := tree.NearestNeighbor([]float64{0.01, 0.02})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, nn)

	rest, err := kdtree.New(unitSquare[1:], kdtree.WithStrategy(s.strategy))
	require.NoError(s.T(), err)
	nn, err = rest.NearestNeighbor(unitSquare[0])
	require.NoError(s.T(), err)
	require.Contains(s.T(), []int{0, 1}, nn, "indices of (0,1) and (1,0) in the reduced set")
}

func (s *TreeSuite) TestNearestMatchesBruteForce() {
	rng := rand.New(rand.NewSource(7))
	for _, d := range []int{1, 2, 3, 5} {
		pts := randomPoints(rng, 300, d)
		tree := s.build(pts, int64(d))
		for range 100 {
			q := randomPoints(rng, 1, d)[0]
			nn, err := tree.NearestNeighbor(q)
			require.NoError(s.T(), err)
			require.Equal(s.T(), bruteNearestSq(pts, q), sqDist(q, pts[nn]), "d=%d", d)
		}
	}
}

func (s *TreeSuite) TestNeighborhoodMatchesBruteForce() {
	rng := rand.New(rand.NewSource(11))
	for _, d := range []int{1, 2, 3} {
		pts := randomPoints(rng, 250, d)
		tree := s.build(pts, 3)
		for range 50 {
			q := randomPoints(rng, 1, d)[0]
			eps := rng.Float64() * 0.7
			for _, open := range []bool{false, true} {
				got, err := tree.Neighborhood(q, eps, open)
				require.NoError(s.T(), err)
				require.Equal(s.T(), bruteBall(pts, q, eps, open), got)

				bm, err := tree.NeighborhoodBitmap(q, eps, open)
				require.NoError(s.T(), err)
				require.Equal(s.T(), uint64(len(got)), bm.GetCardinality())
			}
		}
	}
}

func (s *TreeSuite) TestOpenVersusClosedOnGrid() {
	pts := gridPoints(6)
	tree := s.build(pts, 5)
	q := []float64{2, 2}

	closed, err := tree.Neighborhood(q, 1, false)
	require.NoError(s.T(), err)
	open, err := tree.Neighborhood(q, 1, true)
	require.NoError(s.T(), err)

	require.Len(s.T(), closed, 5, "centre plus four unit neighbors")
	require.Len(s.T(), open, 1, "only the centre itself")
	require.Equal(s.T(), bruteBall(pts, q, 1, false), closed)
}

func (s *TreeSuite) TestNearestNeighborsMatchesBruteForce() {
	rng := rand.New(rand.NewSource(13))
	pts := randomPoints(rng, 200, 3)
	tree := s.build(pts, 9)
	for range 30 {
		q := randomPoints(rng, 1, 3)[0]
		got, err := tree.NearestNeighbors(q, 7)
		require.NoError(s.T(), err)

		want := make([]int, len(pts))
		for i := range want {
			want[i] = i
		}
		slices.SortFunc(want, func(a, b int) int {
			da, db := sqDist(q, pts[a]), sqDist(q, pts[b])
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}

			return a - b
		})
		require.Equal(s.T(), want[:7], got)
	}

	all, err := tree.NearestNeighbors(pts[0], 1000)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, len(pts))
}

func (s *TreeSuite) TestPointsRoundTrip() {
	pts := gridPoints(4)
	tree := s.build(pts, 17)
	require.Equal(s.T(), len(pts), tree.Size())
	require.Equal(s.T(), 2, tree.Dimension())
	for i, p := range pts {
		got, err := tree.Point(i)
		require.NoError(s.T(), err)
		require.Equal(s.T(), p, got)
	}

	perm := tree.Permutation()
	sorted := slices.Clone(perm)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(s.T(), i, v, "permutation covers every index once")
	}
	for pos, orig := range perm {
		got, err := tree.OriginalIndex(pos)
		require.NoError(s.T(), err)
		require.Equal(s.T(), orig, got)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := kdtree.New(nil)
	assert.ErrorIs(t, err, kdtree.ErrNoPoints)

	_, err = kdtree.New([][]float64{{}})
	assert.ErrorIs(t, err, kdtree.ErrRaggedPoints)

	_, err = kdtree.New([][]float64{{0, 1}, {2}})
	assert.ErrorIs(t, err, kdtree.ErrRaggedPoints)

	_, err = kdtree.New([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, kdtree.ErrNonFinite)
}

func TestQuery_Errors(t *testing.T) {
	tree, err := kdtree.New(unitSquare)
	require.NoError(t, err)

	_, err = tree.NearestNeighbor([]float64{0})
	assert.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
	_, err = tree.Neighborhood([]float64{0, 0, 0}, 1, false)
	assert.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
	_, err = tree.NearestNeighbors([]float64{0, 0}, 0)
	assert.ErrorIs(t, err, kdtree.ErrOutOfRange)

	for _, q := range [][]float64{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 0}} {
		_, err = tree.NearestNeighbor(q)
		assert.ErrorIs(t, err, kdtree.ErrNonFinite)
		_, err = tree.Neighborhood(q, 1, false)
		assert.ErrorIs(t, err, kdtree.ErrNonFinite)
		_, err = tree.NeighborhoodBitmap(q, 1, true)
		assert.ErrorIs(t, err, kdtree.ErrNonFinite)
		_, err = tree.NearestNeighbors(q, 1)
		assert.ErrorIs(t, err, kdtree.ErrNonFinite)
	}
	_, err = tree.Point(4)
	assert.ErrorIs(t, err, kdtree.ErrOutOfRange)
	_, err = tree.OriginalIndex(-1)
	assert.ErrorIs(t, err, kdtree.ErrOutOfRange)

	got, err := tree.Neighborhood([]float64{0, 0}, -1, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNew_CopiesInput(t *testing.T) {
	pts := [][]float64{{0, 0}, {5, 5}}
	tree, err := kdtree.New(pts)
	require.NoError(t, err)
	pts[1][0] = -100

	p, err := tree.Point(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, p)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { kdtree.WithRand(nil) })
	assert.Panics(t, func() { kdtree.WithStrategy(kdtree.Strategy(9)) })
	assert.Equal(t, "permute-points", kdtree.PermutePoints.String())
}

func TestTree_AllEqualPoints(t *testing.T) {
	pts := make([][]float64, 500)
	for i := range pts {
		pts[i] = []float64{1, 1}
	}
	tree, err := kdtree.New(pts, kdtree.WithSeed(1))
	require.NoError(t, err)

	got, err := tree.Neighborhood([]float64{1, 1}, 0, false)
	require.NoError(t, err)
	assert.Len(t, got, 500)
}
