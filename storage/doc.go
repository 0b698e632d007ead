// SPDX-License-Identifier: MIT

// Package storage holds the (element, filtration index) associations behind
// a filtered stream.
//
// A Strategy has two states. While open it accepts Add, Update and Remove
// and makes no promise about iteration order. Finalize seals it, after which
// mutations fail with ErrSealed and All yields elements ordered by
// filtration index, then by the basis comparator.
//
// Two strategies are provided:
//
//   - Sorted keeps an unordered slice of (index, element) entries and sorts
//     it once, on seal. Updates and removals leave tombstones that the seal
//     compacts away.
//   - Bucketed keeps filtration index -> dimension -> elements. No global
//     sort is ever done: iteration walks indices in increasing order, then
//     dimensions in increasing order, sorting each bucket the first time it
//     is reached. The lazy sort runs under a sync.Once per bucket so a sealed
//     Bucketed is safe for concurrent readers.
//
// Elements are identified by their Key. Neither strategy locks during the
// open phase; callers must not mutate one concurrently.
package storage
