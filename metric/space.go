// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/plexus/kdtree"
)

// Space is a finite metric space on the indices 0..Size()-1.
type Space interface {
	Distance(i, j int) (float64, error)
	Size() int
	Point(i int) ([]float64, error)
}

// Searchable is a Space that answers proximity queries about arbitrary
// query points. Results are point indices; self-matches are included.
type Searchable interface {
	Space
	NearestPoint(q []float64) (int, error)
	Neighborhood(q []float64, eps float64, open bool) ([]int, error)
	NeighborhoodBitmap(q []float64, eps float64, open bool) (*roaring.Bitmap, error)
}

// Euclidean is a point cloud in ℝ^d with the Euclidean distance, indexed by
// a k-d tree.
type Euclidean struct {
	tree *kdtree.Tree
	rows [][]float64
}

// NewEuclidean builds the space and its k-d tree; opts are passed to kdtree.New.
func NewEuclidean(points [][]float64, opts ...kdtree.Option) (*Euclidean, error) {
	tree, err := kdtree.New(points, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewEuclidean: %w", err)
	}
	rows := make([][]float64, tree.Size())
	for i := range rows {
		rows[i], _ = tree.Point(i)
	}

	return &Euclidean{tree: tree, rows: rows}, nil
}

// Tree returns the underlying k-d tree.
func (e *Euclidean) Tree() *kdtree.Tree { return e.tree }

func (e *Euclidean) Size() int { return len(e.rows) }

// Dimension returns the ambient dimension d.
func (e *Euclidean) Dimension() int { return e.tree.Dimension() }

func (e *Euclidean) Distance(i, j int) (float64, error) {
	if i < 0 || i >= len(e.rows) || j < 0 || j >= len(e.rows) {
		return 0, fmt.Errorf("Euclidean.Distance(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return euclidean(e.rows[i], e.rows[j]), nil
}

func (e *Euclidean) Point(i int) ([]float64, error) {
	p, err := e.tree.Point(i)
	if err != nil {
		return nil, fmt.Errorf("Euclidean.Point(%d): %w", i, ErrOutOfRange)
	}

	return p, nil
}

func (e *Euclidean) NearestPoint(q []float64) (int, error) { return e.tree.NearestNeighbor(q) }

func (e *Euclidean) Neighborhood(q []float64, eps float64, open bool) ([]int, error) {
	return e.tree.Neighborhood(q, eps, open)
}

func (e *Euclidean) NeighborhoodBitmap(q []float64, eps float64, open bool) (*roaring.Bitmap, error) {
	return e.tree.NeighborhoodBitmap(q, eps, open)
}

func euclidean(a, b []float64) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}

	return math.Sqrt(s)
}

// Matrix is a metric space given by an explicit distance matrix.
type Matrix struct {
	d [][]float64
}

// NewMatrix validates and copies a distance matrix. Entries must be finite
// and non-negative, the matrix symmetric with a zero diagonal.
func NewMatrix(d [][]float64) (*Matrix, error) {
	n := len(d)
	cp := make([][]float64, n)
	for i, row := range d {
		if len(row) != n {
			return nil, fmt.Errorf("NewMatrix: row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		cp[i] = make([]float64, n)
		copy(cp[i], row)
	}
	for i := range n {
		if cp[i][i] != 0 {
			return nil, fmt.Errorf("NewMatrix: d[%d][%d]=%g: %w", i, i, cp[i][i], ErrNotMetric)
		}
		for j := range i {
			x := cp[i][j]
			if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) || x != cp[j][i] {
				return nil, fmt.Errorf("NewMatrix: d[%d][%d]=%g, d[%d][%d]=%g: %w", i, j, x, j, i, cp[j][i], ErrNotMetric)
			}
		}
	}

	return &Matrix{d: cp}, nil
}

func (m *Matrix) Size() int { return len(m.d) }

func (m *Matrix) Distance(i, j int) (float64, error) {
	if i < 0 || i >= len(m.d) || j < 0 || j >= len(m.d) {
		return 0, fmt.Errorf("Matrix.Distance(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.d[i][j], nil
}

// Point always fails: a Matrix space has distances only.
func (m *Matrix) Point(i int) ([]float64, error) {
	return nil, fmt.Errorf("Matrix.Point(%d): %w", i, ErrNoCoordinates)
}
