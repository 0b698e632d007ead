package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/matrix"
)

func fill(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.True(t, m.IsZero())

	require.NoError(t, m.Set(1, 2, 5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.False(t, m.IsZero())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMul(t *testing.T) {
	a := fill(t, [][]float64{{1, 2}, {3, 4}})
	b := fill(t, [][]float64{{2, 0}, {1, 2}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, fill(t, [][]float64{{4, 4}, {10, 8}}), got)

	_, err = matrix.Mul(a, fill(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// 2×0 · 0×3 is the 2×3 zero matrix.
	l, _ := matrix.NewDense(2, 0)
	r, _ := matrix.NewDense(0, 3)
	z, err := matrix.Mul(l, r)
	require.NoError(t, err)
	assert.Equal(t, 2, z.Rows())
	assert.Equal(t, 3, z.Cols())
	assert.True(t, z.IsZero())
}

func TestTransposeAndString(t *testing.T) {
	m := fill(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	assert.Equal(t, fill(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), m.Transpose())
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}
