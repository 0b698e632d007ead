// SPDX-License-Identifier: MIT

// Package metric describes the finite metric spaces geometric complexes are
// built from, and selects landmark subsets of them.
//
// Space is the minimal capability: pairwise distances between indexed
// points. Searchable adds nearest-point and ball queries, which Euclidean
// answers with a k-d tree. Matrix wraps an explicit distance matrix for
// spaces without coordinates.
//
// Landmark selection:
//
//	MaxMinLandmarks  greedy farthest-point sampling from a given first point
//	RandomLandmarks  a uniform random subset, sorted ascending
package metric
