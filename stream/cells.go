// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"

	"github.com/katalvlaran/plexus/basis"
)

// CellStream is an explicit stream of CW cells that owns the Arena issuing
// them. Cells are addressed by arena id, so a complex can be described as a
// sequence of attachments:
//
//	v, _ := s.AddVertex(0)
//	a, _ := s.AttachToPoint(1, v, 0) // loop at v
//	b, _ := s.AttachToPoint(1, v, 0)
//	_, err := s.AttachCellWithDegrees(2, []int{a, b, a, b}, []int{1, 1, -1, -1}, 0) // torus
type CellStream struct {
	*Explicit[*basis.Cell]
	arena *basis.Arena
}

// NewCellStream returns an empty cell stream ordered by basis.CompareCell.
func NewCellStream(opts ...Option) *CellStream {
	return &CellStream{
		Explicit: New(basis.CompareCell, opts...),
		arena:    basis.NewArena(),
	}
}

// Arena returns the arena that issues the cells of s.
func (s *CellStream) Arena() *basis.Arena { return s.arena }

// Cell returns the cell with the given id.
func (s *CellStream) Cell(id int) (*basis.Cell, error) { return s.arena.Cell(id) }

// AddVertex issues a 0-cell at index and returns its id.
func (s *CellStream) AddVertex(index int) (int, error) {
	if s.Finalized() {
		return 0, fmt.Errorf("AddVertex: %w", ErrSealed)
	}

	return s.insert(s.arena.NewVertex(), index)
}

// AttachCell issues a dim-cell with the given boundary cells and alternating
// attaching degrees, and returns its id.
func (s *CellStream) AttachCell(dim int, boundaryIDs []int, index int) (int, error) {
	if s.Finalized() {
		return 0, fmt.Errorf("AttachCell: %w", ErrSealed)
	}
	faces, err := s.lookup(boundaryIDs)
	if err != nil {
		return 0, fmt.Errorf("AttachCell: %w", err)
	}
	c, err := s.arena.NewCell(dim, faces...)
	if err != nil {
		return 0, fmt.Errorf("AttachCell: %w", err)
	}

	return s.insert(c, index)
}

// AttachCellWithDegrees issues a dim-cell with explicit attaching degrees.
func (s *CellStream) AttachCellWithDegrees(dim int, boundaryIDs, degrees []int, index int) (int, error) {
	if s.Finalized() {
		return 0, fmt.Errorf("AttachCellWithDegrees: %w", ErrSealed)
	}
	faces, err := s.lookup(boundaryIDs)
	if err != nil {
		return 0, fmt.Errorf("AttachCellWithDegrees: %w", err)
	}
	c, err := s.arena.NewCellWithDegrees(dim, faces, degrees)
	if err != nil {
		return 0, fmt.Errorf("AttachCellWithDegrees: %w", err)
	}

	return s.insert(c, index)
}

// AttachToPoint issues a dim-cell whose boundary collapses onto a vertex.
func (s *CellStream) AttachToPoint(dim, vertexID, index int) (int, error) {
	if s.Finalized() {
		return 0, fmt.Errorf("AttachToPoint: %w", ErrSealed)
	}
	v, err := s.arena.Cell(vertexID)
	if err != nil {
		return 0, fmt.Errorf("AttachToPoint: %w", err)
	}
	c, err := s.arena.AttachToPoint(dim, v)
	if err != nil {
		return 0, fmt.Errorf("AttachToPoint: %w", err)
	}

	return s.insert(c, index)
}

func (s *CellStream) lookup(ids []int) ([]*basis.Cell, error) {
	faces := make([]*basis.Cell, len(ids))
	for i, id := range ids {
		c, err := s.arena.Cell(id)
		if err != nil {
			return nil, err
		}
		faces[i] = c
	}

	return faces, nil
}

func (s *CellStream) insert(c *basis.Cell, index int) (int, error) {
	if err := s.AddElement(c, index); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
