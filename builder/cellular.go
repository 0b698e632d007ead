// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/plexus/stream"
)

// cells wraps a CellStream this package just opened; every failure is a
// programming error and panics.
type cells struct{ s *stream.CellStream }

func newCells(cfg builderConfig) cells { return cells{s: stream.NewCellStream(cfg.streamOpts...)} }

func (c cells) vertex(index int) int { return check(c.s.AddVertex(index)) }

func (c cells) attach(dim, index int, ids ...int) int {
	return check(c.s.AttachCell(dim, ids, index))
}

func (c cells) attachDegrees(dim, index int, ids, degrees []int) int {
	return check(c.s.AttachCellWithDegrees(dim, ids, degrees, index))
}

func (c cells) point(dim, v, index int) int { return check(c.s.AttachToPoint(dim, v, index)) }

func (c cells) done() *stream.CellStream {
	c.s.Finalize()
	return c.s
}

func check(id int, err error) int {
	if err != nil {
		panic(err)
	}

	return id
}

// CellularSphere returns the d-sphere as one vertex and one d-cell whose
// boundary collapses onto it. d must be ≥ MinCellularSphereDim.
func CellularSphere(d int, opts ...BuilderOption) (*stream.CellStream, error) {
	if d < MinCellularSphereDim {
		return nil, builderErrorf(MethodCellularSphere, "d=%d", ErrBadSize, d)
	}
	c := newCells(newBuilderConfig(opts...))
	v := c.vertex(0)
	c.point(d, v, 0)

	return c.done(), nil
}

// twoLoopSurface glues a 2-cell along the word e1 e2 e1 e2 of two loops at
// one vertex; degrees choose the orientation of each letter.
func twoLoopSurface(cfg builderConfig, degrees []int) *stream.CellStream {
	c := newCells(cfg)
	v := c.vertex(0)
	e1 := c.point(1, v, 0)
	e2 := c.point(1, v, 0)
	c.attachDegrees(2, 0, []int{e1, e2, e1, e2}, degrees)

	return c.done()
}

// CellularTorus returns the torus as the square a b a⁻¹ b⁻¹.
func CellularTorus(opts ...BuilderOption) *stream.CellStream {
	return twoLoopSurface(newBuilderConfig(opts...), []int{1, 1, -1, -1})
}

// CellularKleinBottle returns the Klein bottle as the square a b a⁻¹ b.
// Its 2-cell has boundary -2·e2.
func CellularKleinBottle(opts ...BuilderOption) *stream.CellStream {
	return twoLoopSurface(newBuilderConfig(opts...), []int{1, -1, -1, -1})
}

// CellularRP2 returns the real projective plane as the square a b a b.
// Its 2-cell has boundary 2·e1 + 2·e2.
func CellularRP2(opts ...BuilderOption) *stream.CellStream {
	return twoLoopSurface(newBuilderConfig(opts...), []int{1, 1, 1, 1})
}

// CellularMobiusBand returns a Möbius band on two vertices and three edges.
func CellularMobiusBand(opts ...BuilderOption) *stream.CellStream {
	c := newCells(newBuilderConfig(opts...))
	v1 := c.vertex(0)
	v2 := c.vertex(0)
	e1 := c.attach(1, 0, v2, v1)
	e2 := c.attach(1, 0, v2, v1)
	e3 := c.attach(1, 0, v1, v2)
	c.attachDegrees(2, 0, []int{e1, e3, e1, e2}, []int{1, 1, 1, -1})

	return c.done()
}

// MorozovJohansson returns the running example of de Silva, Morozov and
// Johansson, "Dualities in Persistent (Co)homology": two vertices at 1, 2,
// two parallel edges at 3, 4 and two discs spanning them at 5, 6.
func MorozovJohansson(opts ...BuilderOption) *stream.CellStream {
	c := newCells(newBuilderConfig(opts...))
	v1 := c.vertex(1)
	v2 := c.vertex(2)
	e3 := c.attach(1, 3, v1, v2)
	e4 := c.attach(1, 4, v1, v2)
	c.attach(2, 5, e3, e4)
	c.attach(2, 6, e3, e4)

	return c.done()
}
