// SPDX-License-Identifier: MIT

package basis

import (
	"cmp"
	"slices"
)

// CompareSimplex orders simplices by dimension, then lexicographically by vertices.
func CompareSimplex(a, b Simplex) int {
	if c := cmp.Compare(len(a.vertices), len(b.vertices)); c != 0 {
		return c
	}

	return slices.Compare(a.vertices, b.vertices)
}

// CompareCell orders cells by dimension, then by arena id.
func CompareCell(a, b *Cell) int {
	if c := cmp.Compare(a.dimension, b.dimension); c != 0 {
		return c
	}

	return cmp.Compare(a.id, b.id)
}

// ComparePairs returns the lexicographic order on pairs induced by cmpT and cmpU.
func ComparePairs[T, U Element](cmpT func(a, b T) int, cmpU func(a, b U) int) func(a, b Pair[T, U]) int {
	return func(a, b Pair[T, U]) int {
		if c := cmpT(a.First, b.First); c != 0 {
			return c
		}

		return cmpU(a.Second, b.Second)
	}
}

// Reverse returns the order opposite to c.
func Reverse[T any](c func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return c(b, a) }
}
