// SPDX-License-Identifier: MIT

package stream

import (
	"slices"

	"github.com/katalvlaran/plexus/basis"
)

// Elements collects the basis of s in iteration order.
func Elements[T basis.Element](s Stream[T]) []T {
	return slices.Collect(s.All())
}

// Skeleton returns the elements of s of dimension k, in iteration order.
func Skeleton[T basis.Element](s Stream[T], k int) []T {
	var out []T
	for e := range s.All() {
		if s.Dimension(e) == k {
			out = append(out, e)
		}
	}

	return out
}

// SkeletonSize counts the elements of s of dimension k.
func SkeletonSize[T basis.Element](s Stream[T], k int) int {
	n := 0
	for e := range s.All() {
		if s.Dimension(e) == k {
			n++
		}
	}

	return n
}

// MaxDimension returns the largest element dimension in s, or -1 when s is empty.
func MaxDimension[T basis.Element](s Stream[T]) int {
	top := -1
	for e := range s.All() {
		top = max(top, s.Dimension(e))
	}

	return top
}
