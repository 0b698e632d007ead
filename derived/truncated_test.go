package derived_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/derived"
	"github.com/katalvlaran/plexus/stream"
)

func TestTruncated(t *testing.T) {
	s := simplicial(t, zomorodianCarlsson)
	tr := derived.NewTruncated[basis.Simplex](s, 2)

	require.True(t, s.Finalized())
	assert.Equal(t, 8, tr.Size())
	assert.Len(t, stream.Elements[basis.Simplex](tr), 8)
	assert.True(t, stream.Validate[basis.Simplex](tr))
	assert.Equal(t, 0, tr.MinFiltrationIndex())
	assert.Equal(t, 2, tr.MaxFiltrationIndex())

	assert.True(t, tr.Contains(basis.NewSimplex(2, 3)))
	assert.False(t, tr.Contains(basis.NewSimplex(0, 2)))
	_, err := tr.FiltrationIndex(basis.NewSimplex(0, 2))
	assert.ErrorIs(t, err, stream.ErrNotFound)
	_, err = tr.FiltrationIndex(basis.NewSimplex(7))
	assert.ErrorIs(t, err, stream.ErrNotFound)
}

func TestTruncated_CutoffBelowEverything(t *testing.T) {
	tr := derived.NewTruncated[basis.Simplex](simplicial(t, filteredTriangle), 0)

	assert.Zero(t, tr.Size())
	assert.Zero(t, tr.MaxFiltrationIndex())
	assert.Zero(t, tr.MinFiltrationIndex())
}

func TestTruncated_OfDual(t *testing.T) {
	dual := derived.NewDual[basis.Simplex](simplicial(t, filteredTriangle))
	tr := derived.NewTruncated[basis.Simplex](dual, 3)

	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, []string{"[3]", "[2]", "[1]"}, keys(stream.Elements[basis.Simplex](tr)))
}

func keys[T basis.Element](elems []T) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Key()
	}

	return out
}
