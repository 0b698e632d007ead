// SPDX-License-Identifier: MIT

package kdtree

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// NearestNeighbor returns the original index of a point minimizing the
// Euclidean distance to q. Ties resolve to whichever point the search
// reaches first.
//
// Implementation: branch and bound. The half-space containing q is searched
// first; the other half only if the squared distance from q to the split
// plane is below the best squared distance found so far.
func (t *Tree) NearestNeighbor(q []float64) (int, error) {
	if err := t.checkQuery("NearestNeighbor", q); err != nil {
		return 0, err
	}

	best, bestSq := -1, math.Inf(1)
	t.nearest(q, 0, len(t.order), 0, &best, &bestSq)

	return t.order[best], nil
}

func (t *Tree) nearest(q []float64, lo, hi, depth int, best *int, bestSq *float64) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	p := t.row(mid)
	if d := sqDist(q, p); d < *bestSq || *best < 0 {
		*best, *bestSq = mid, d
	}

	axis := depth % t.dim
	diff := q[axis] - p[axis]
	nearLo, nearHi, farLo, farHi := lo, mid, mid+1, hi
	if diff >= 0 {
		nearLo, nearHi, farLo, farHi = mid+1, hi, lo, mid
	}

	t.nearest(q, nearLo, nearHi, depth+1, best, bestSq)
	if diff*diff < *bestSq {
		t.nearest(q, farLo, farHi, depth+1, best, bestSq)
	}
}

// Neighborhood returns, in ascending order, the original indices of all
// points within distance eps of q. With open set the test is strict (< eps),
// otherwise closed (≤ eps). A negative eps yields an empty result.
func (t *Tree) Neighborhood(q []float64, eps float64, open bool) ([]int, error) {
	if err := t.checkQuery("Neighborhood", q); err != nil {
		return nil, err
	}

	out := make([]int, 0, 8)
	t.visitBall(q, eps, open, func(orig int) { out = append(out, orig) })
	slices.Sort(out)

	return out, nil
}

// NeighborhoodBitmap is Neighborhood with the result as a roaring bitmap,
// ready for set algebra (intersections of neighbor sets during clique
// expansion).
func (t *Tree) NeighborhoodBitmap(q []float64, eps float64, open bool) (*roaring.Bitmap, error) {
	if err := t.checkQuery("NeighborhoodBitmap", q); err != nil {
		return nil, err
	}

	bm := roaring.New()
	t.visitBall(q, eps, open, func(orig int) { bm.Add(uint32(orig)) })

	return bm, nil
}

func (t *Tree) visitBall(q []float64, eps float64, open bool, visit func(orig int)) {
	if eps < 0 || math.IsNaN(eps) {
		return
	}
	t.ball(q, eps*eps, open, 0, len(t.order), 0, visit)
}

func (t *Tree) ball(q []float64, epsSq float64, open bool, lo, hi, depth int, visit func(int)) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	p := t.row(mid)
	if within(sqDist(q, p), epsSq, open) {
		visit(t.order[mid])
	}

	axis := depth % t.dim
	diff := q[axis] - p[axis]
	planeSq := diff * diff
	// the side containing q is always searched; the other side only when
	// the ball reaches across the split plane
	if diff < 0 || within(planeSq, epsSq, open) {
		t.ball(q, epsSq, open, lo, mid, depth+1, visit)
	}
	if diff >= 0 || within(planeSq, epsSq, open) {
		t.ball(q, epsSq, open, mid+1, hi, depth+1, visit)
	}
}

func within(dSq, epsSq float64, open bool) bool {
	if open {
		return dSq < epsSq
	}

	return dSq <= epsSq
}

func (t *Tree) checkQuery(op string, q []float64) error {
	if len(q) != t.dim {
		return fmt.Errorf("Tree.%s: query has %d coordinates, want %d: %w", op, len(q), t.dim, ErrDimensionMismatch)
	}
	for axis, x := range q {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("Tree.%s: query axis %d: %w", op, axis, ErrNonFinite)
		}
	}

	return nil
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}
