// SPDX-License-Identifier: MIT

package kdtree

// builder carries the construction state; it is discarded once New returns.
type builder struct {
	tree *Tree
	cfg  config
}

func (b *builder) build(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}
	axis := depth % b.tree.dim
	mid := (lo + hi) / 2
	b.selectKth(lo, hi-1, mid, axis)
	b.build(lo, mid, depth+1)
	b.build(mid+1, hi, depth+1)
}

// selectKth rearranges positions [lo,hi] (inclusive) so that position k holds
// the value it would hold if the range were sorted along axis, every position
// before k holds a value ≤ it and every position after k a value ≥ it.
//
// Three-way partitioning keeps runs of equal coordinates linear.
func (b *builder) selectKth(lo, hi, k, axis int) {
	for lo < hi {
		pivot := b.key(lo+b.cfg.intn(hi-lo+1), axis)
		lt, gt := b.partition(lo, hi, axis, pivot)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

// partition splits [lo,hi] into < pivot, == pivot, > pivot and returns the
// inclusive bounds of the middle run.
func (b *builder) partition(lo, hi, axis int, pivot float64) (lt, gt int) {
	lt, gt = lo, hi
	for i := lo; i <= gt; {
		switch v := b.key(i, axis); {
		case v < pivot:
			b.swap(lt, i)
			lt++
			i++
		case v > pivot:
			b.swap(i, gt)
			gt--
		default:
			i++
		}
	}

	return lt, gt
}

func (b *builder) key(pos, axis int) float64 { return b.tree.row(pos)[axis] }

func (b *builder) swap(i, j int) {
	t := b.tree
	t.order[i], t.order[j] = t.order[j], t.order[i]
	if t.strategy == PermutePoints {
		t.rows[i], t.rows[j] = t.rows[j], t.rows[i]
	}
}
