// SPDX-License-Identifier: MIT

package kdtree

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
)

type candidate struct {
	orig  int
	sqDst float64
}

// worse orders candidates farther-first; equal distances put the larger
// original index first so results are deterministic.
func worse(a, b candidate) bool {
	if a.sqDst != b.sqDst {
		return a.sqDst > b.sqDst
	}

	return a.orig > b.orig
}

// maxHeap keeps the current k best candidates with the worst on top.
type maxHeap []candidate

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// NearestNeighbors returns the original indices of the k points closest to
// q, ascending by distance (ties by index). k larger than Size() is clamped.
//
// Complexity: O(k + log n · log k) expected on well-spread data.
func (t *Tree) NearestNeighbors(q []float64, k int) ([]int, error) {
	if err := t.checkQuery("NearestNeighbors", q); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("Tree.NearestNeighbors: k=%d: %w", k, ErrOutOfRange)
	}
	k = min(k, len(t.order))

	h := make(maxHeap, 0, k)
	t.knn(q, k, 0, len(t.order), 0, &h)

	found := []candidate(h)
	slices.SortFunc(found, func(a, b candidate) int {
		if c := cmp.Compare(a.sqDst, b.sqDst); c != 0 {
			return c
		}

		return cmp.Compare(a.orig, b.orig)
	})
	out := make([]int, len(found))
	for i, c := range found {
		out[i] = c.orig
	}

	return out, nil
}

func (t *Tree) knn(q []float64, k, lo, hi, depth int, h *maxHeap) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	p := t.row(mid)
	c := candidate{orig: t.order[mid], sqDst: sqDist(q, p)}
	switch {
	case h.Len() < k:
		heap.Push(h, c)
	case worse((*h)[0], c):
		(*h)[0] = c
		heap.Fix(h, 0)
	}

	axis := depth % t.dim
	diff := q[axis] - p[axis]
	nearLo, nearHi, farLo, farHi := lo, mid, mid+1, hi
	if diff >= 0 {
		nearLo, nearHi, farLo, farHi = mid+1, hi, lo, mid
	}

	t.knn(q, k, nearLo, nearHi, depth+1, h)
	// ≤ so that equal-distance candidates with smaller indices are still seen
	if h.Len() < k || diff*diff <= (*h)[0].sqDst {
		t.knn(q, k, farLo, farHi, depth+1, h)
	}
}
