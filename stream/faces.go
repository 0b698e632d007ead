// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// EnsureAllFaces closes s under taking faces. Every missing face is added at
// the smallest filtration index among its cofaces, so the result validates
// whenever the present elements already respect the face order among
// themselves.
//
// Implementation:
//   - Stage 1: group present elements by dimension.
//   - Stage 2: walk dimensions from the top down; each face not already
//     present takes the minimum index over its cofaces and joins the level
//     of its own dimension.
//   - Stage 3: insert the new faces.
//
// Finishing a whole dimension before the ones below guarantees every coface
// of a face is seen before the face is itself used as a coface.
//
// Complexity: O(Σ |∂e|) map operations over the closed complex.
func (s *Explicit[T]) EnsureAllFaces() error {
	if s.Finalized() {
		return fmt.Errorf("EnsureAllFaces: %w", ErrSealed)
	}

	levels := make(map[int][]T)
	for e := range s.All() {
		levels[e.Dimension()] = append(levels[e.Dimension()], e)
	}
	if len(levels) == 0 {
		return nil
	}

	added := make(map[string]int) // key -> index of a new face
	var fresh []T                 // new faces, in discovery order
	indexOf := func(e T) int {
		if idx, ok := s.store.FiltrationIndex(e); ok {
			return idx
		}

		return added[e.Key()]
	}

	for dim := slices.Max(slices.Collect(maps.Keys(levels))); dim > 0; dim-- {
		start := len(fresh)
		for _, coface := range levels[dim] {
			cIdx := indexOf(coface)
			for _, face := range coface.Boundary() {
				if s.store.Contains(face) {
					continue
				}
				key := face.Key()
				if cur, seen := added[key]; !seen {
					added[key] = cIdx
					fresh = append(fresh, face)
				} else if cIdx < cur {
					added[key] = cIdx
				}
			}
		}
		for _, face := range fresh[start:] {
			d := min(face.Dimension(), dim-1)
			levels[d] = append(levels[d], face)
		}
	}

	for _, face := range fresh {
		if err := s.store.Add(face, added[face.Key()]); err != nil {
			return fmt.Errorf("EnsureAllFaces: %w", err)
		}
	}
	s.logger.Debug("stream: faces completed", slog.Int("added", len(fresh)), slog.Int("size", s.store.Len()))

	return nil
}
