// SPDX-License-Identifier: MIT

package kdtree

import (
	"fmt"
	"math"
	"slices"
)

// Tree is a balanced k-d tree. The node for position range [lo,hi) sits at
// position (lo+hi)/2; its split axis is its depth modulo Dimension().
type Tree struct {
	// rows holds the coordinates. Under PartitionIndices rows[i] is original
	// point i; under PermutePoints rows[pos] is the point at tree position pos.
	rows     [][]float64
	order    []int // tree position -> original index
	where    []int // original index -> tree position, PermutePoints only
	dim      int
	strategy Strategy
}

// New builds a tree over points. The coordinates are copied; the caller may
// reuse points afterwards.
//
// Implementation:
//   - Stage 1: validate shape and finiteness, deep-copy rows.
//   - Stage 2: recursively select the median of each range along depth mod d.
//
// Complexity: O(n·d) copy + O(n log n) expected selection.
func New(points [][]float64, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts...)

	if len(points) == 0 {
		return nil, fmt.Errorf("kdtree.New: %w", ErrNoPoints)
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("kdtree.New: point 0 has no coordinates: %w", ErrRaggedPoints)
	}
	rows := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("kdtree.New: point %d has %d coordinates, want %d: %w",
				i, len(p), dim, ErrRaggedPoints)
		}
		for axis, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("kdtree.New: point %d axis %d: %w", i, axis, ErrNonFinite)
			}
		}
		rows[i] = slices.Clone(p)
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}

	t := &Tree{rows: rows, order: order, dim: dim, strategy: cfg.strategy}
	b := builder{tree: t, cfg: cfg}
	b.build(0, len(order), 0)

	if t.strategy == PermutePoints {
		t.where = make([]int, len(order))
		for pos, orig := range order {
			t.where[orig] = pos
		}
	}

	return t, nil
}

// Size returns the number of points.
func (t *Tree) Size() int { return len(t.order) }

// Dimension returns the ambient dimension d.
func (t *Tree) Dimension() int { return t.dim }

// Strategy returns the build strategy in use.
func (t *Tree) Strategy() Strategy { return t.strategy }

// Point returns a copy of the coordinates of original point i.
func (t *Tree) Point(i int) ([]float64, error) {
	if i < 0 || i >= len(t.order) {
		return nil, fmt.Errorf("Tree.Point(%d): %w", i, ErrOutOfRange)
	}
	if t.strategy == PartitionIndices {
		return slices.Clone(t.rows[i]), nil
	}

	return slices.Clone(t.rows[t.where[i]]), nil
}

// OriginalIndex maps a tree position to the caller's point index.
func (t *Tree) OriginalIndex(pos int) (int, error) {
	if pos < 0 || pos >= len(t.order) {
		return 0, fmt.Errorf("Tree.OriginalIndex(%d): %w", pos, ErrOutOfRange)
	}

	return t.order[pos], nil
}

// Permutation returns a copy of the position -> original index mapping.
func (t *Tree) Permutation() []int { return slices.Clone(t.order) }

// row returns the coordinates stored at tree position pos.
func (t *Tree) row(pos int) []float64 {
	if t.strategy == PermutePoints {
		return t.rows[pos]
	}

	return t.rows[t.order[pos]]
}
