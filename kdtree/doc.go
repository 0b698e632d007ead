// SPDX-License-Identifier: MIT

// Package kdtree provides a balanced k-d tree over a fixed point set in ℝ^d,
// used to build geometric complexes (Vietoris–Rips, witness) from point clouds.
//
// Construction recursively splits a position range [lo,hi): at depth k the
// splitting axis is k mod d, and the median of the range along that axis is
// selected in expected linear time by randomized three-way quickselect. The
// median lands at position (lo+hi)/2 and becomes the node; [lo,mid) and
// [mid+1,hi) become its subtrees. After the build no node ever moves.
//
// Two build strategies are offered as a construction option of one type:
//
//   - PartitionIndices (default): the point rows are never moved; a list of
//     indices is partitioned instead.
//   - PermutePoints: point rows are copied and physically reordered, which
//     keeps each subtree contiguous in memory. OriginalIndex and Permutation
//     map tree positions back to caller indices.
//
// Whatever the strategy, every query reports original point indices.
//
// Queries:
//
//	NearestNeighbor(q)            one index minimizing |q - p_i|
//	NearestNeighbors(q, k)        k closest indices, ascending by distance
//	Neighborhood(q, ε, open)      all i with |q - p_i| < ε (open) or ≤ ε (closed)
//	NeighborhoodBitmap(q, ε, open) the same set as a roaring bitmap
//
// Self-matches are not excluded: querying with the coordinates of point i
// returns i itself (at distance 0). Callers that need "other" points filter i.
//
// Complexity: build O(n log n) expected; queries O(log n) expected on
// well-spread data, degrading toward O(n) on clustered inputs.
//
// A built Tree is immutable and safe for concurrent queries.
package kdtree
