// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// MaxMinLandmarks selects k landmarks by farthest-point sampling: starting
// from first, each next landmark is the point whose distance to the chosen
// set is largest (ties to the lowest index). Landmarks are returned in
// selection order.
//
// Complexity: O(k·n) distance evaluations.
func MaxMinLandmarks(space Space, k, first int) ([]int, error) {
	n := space.Size()
	if k < 1 || k > n {
		return nil, fmt.Errorf("MaxMinLandmarks: k=%d of %d points: %w", k, n, ErrBadLandmarkCount)
	}
	if first < 0 || first >= n {
		return nil, fmt.Errorf("MaxMinLandmarks: first=%d: %w", first, ErrOutOfRange)
	}

	chosen := make([]bool, n)
	nearest := make([]float64, n) // distance to the chosen set
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	landmarks := make([]int, 0, k)
	next := first
	for {
		landmarks = append(landmarks, next)
		chosen[next] = true
		if len(landmarks) == k {
			return landmarks, nil
		}

		best, bestDist := -1, math.Inf(-1)
		for i := range n {
			if chosen[i] {
				continue
			}
			d, err := space.Distance(i, next)
			if err != nil {
				return nil, fmt.Errorf("MaxMinLandmarks: %w", err)
			}
			nearest[i] = min(nearest[i], d)
			if nearest[i] > bestDist {
				best, bestDist = i, nearest[i]
			}
		}
		next = best
	}
}

// RandomLandmarks selects k distinct points uniformly at random and returns
// them ascending. A nil rng uses the process-wide math/rand source.
func RandomLandmarks(space Space, k int, rng *rand.Rand) ([]int, error) {
	n := space.Size()
	if k < 1 || k > n {
		return nil, fmt.Errorf("RandomLandmarks: k=%d of %d points: %w", k, n, ErrBadLandmarkCount)
	}

	var perm []int
	if rng == nil {
		perm = rand.Perm(n)
	} else {
		perm = rng.Perm(n)
	}
	out := perm[:k]
	slices.Sort(out)

	return out, nil
}
