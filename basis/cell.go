// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"slices"
	"strconv"
)

// Cell is a CW cell: an explicit dimension, an explicit boundary list of
// existing cells (repeats allowed) and one attaching degree per boundary
// entry. Degrees are arbitrary integers, which lets a Cell express
// attaching maps such as the torus word e1·e2·e1⁻¹·e2⁻¹.
//
// Cells compare by identity. Two cells with identical boundaries are still
// distinct; the id issued by the owning Arena is what tells them apart.
// Cells from different arenas must not be mixed in one stream.
type Cell struct {
	id        int
	dimension int
	boundary  []*Cell
	degrees   []int
}

// ID returns the arena-assigned id.
func (c *Cell) ID() int { return c.id }

// Dimension returns the dimension supplied at construction.
func (c *Cell) Dimension() int { return c.dimension }

// Key returns "c<id>".
func (c *Cell) Key() string { return "c" + strconv.Itoa(c.id) }

// String implements fmt.Stringer.
func (c *Cell) String() string { return fmt.Sprintf("c%d(dim=%d)", c.id, c.dimension) }

// Boundary returns a copy of the boundary list.
func (c *Cell) Boundary() []*Cell { return slices.Clone(c.boundary) }

// BoundaryCoefficients returns a copy of the attaching degrees.
func (c *Cell) BoundaryCoefficients() []int { return slices.Clone(c.degrees) }

// VerifyDimension checks that all boundary entries share one dimension. An
// empty boundary always passes. The shared dimension may sit below
// Dimension()-1 (a 2-cell attached to a point), so this is advisory only;
// constructors never call it.
func (c *Cell) VerifyDimension() error {
	if len(c.boundary) == 0 {
		return nil
	}
	want := c.boundary[0].dimension
	for i, face := range c.boundary[1:] {
		if face.dimension != want {
			return fmt.Errorf("VerifyDimension: cell %d face %d (cell %d) has dimension %d, want %d: %w",
				c.id, i+1, face.id, face.dimension, want, ErrDimensionMismatch)
		}
	}

	return nil
}

// Arena issues cells with sequential ids starting at 0 and keeps them
// addressable by id. It replaces any process-wide counter: each complex
// builder owns its arena, so ids are deterministic per construction.
//
// Arena is not safe for concurrent use.
type Arena struct {
	cells []*Cell
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of cells issued so far.
func (a *Arena) Len() int { return len(a.cells) }

// Cell returns the cell with the given id.
func (a *Arena) Cell(id int) (*Cell, error) {
	if id < 0 || id >= len(a.cells) {
		return nil, fmt.Errorf("Arena.Cell(%d): %w", id, ErrUnknownCell)
	}

	return a.cells[id], nil
}

// NewVertex issues a 0-cell.
func (a *Arena) NewVertex() *Cell {
	c, _ := a.issue(0, nil, nil)

	return c
}

// NewCell issues a cell whose attaching degrees alternate +1/-1 starting at +1.
func (a *Arena) NewCell(dim int, boundary ...*Cell) (*Cell, error) {
	return a.issue(dim, boundary, alternatingSigns(len(boundary)))
}

// NewCellWithDegrees issues a cell with explicit attaching degrees.
// boundary and degrees must have the same length.
func (a *Arena) NewCellWithDegrees(dim int, boundary []*Cell, degrees []int) (*Cell, error) {
	if len(boundary) != len(degrees) {
		return nil, fmt.Errorf("Arena.NewCellWithDegrees: %d faces, %d degrees: %w",
			len(boundary), len(degrees), ErrCoefficientLength)
	}

	return a.issue(dim, boundary, degrees)
}

// AttachToPoint issues a dim-cell whose whole boundary collapses onto the
// vertex v, i.e. a single boundary entry of degree 0.
// With dim == 1 this is a loop; with dim ≥ 2 a sphere pinched to a point.
func (a *Arena) AttachToPoint(dim int, v *Cell) (*Cell, error) {
	return a.issue(dim, []*Cell{v}, []int{0})
}

func (a *Arena) issue(dim int, boundary []*Cell, degrees []int) (*Cell, error) {
	if dim < 0 {
		return nil, fmt.Errorf("Arena: dimension %d: %w", dim, ErrNegativeDimension)
	}
	for i, face := range boundary {
		if face == nil {
			return nil, fmt.Errorf("Arena: boundary entry %d: %w", i, ErrNilCell)
		}
	}

	c := &Cell{
		id:        len(a.cells),
		dimension: dim,
		boundary:  slices.Clone(boundary),
		degrees:   slices.Clone(degrees),
	}
	if c.boundary == nil {
		c.boundary = []*Cell{}
		c.degrees = []int{}
	}
	a.cells = append(a.cells, c)

	return c, nil
}
