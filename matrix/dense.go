// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// add accumulates v at a flat offset known to be valid.
func (m *Dense) add(row, col int, v float64) { m.data[row*m.c+col] += v }

// Mul returns the product a·b.
// Stage 1 (Validate): a.Cols() must equal b.Rows().
// Stage 2 (Execute): i→k→j loop over the flat buffers, skipping zero a[i,k].
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := range a.r {
		rowA, rowR := i*a.c, i*b.c
		for k := range a.c {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := range b.c {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// IsZero reports whether every entry is exactly zero. Empty matrices are zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Transpose returns a new c×r matrix with rows and columns exchanged.
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := range m.r {
		for j := range m.c {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := range m.r {
		sb.WriteString("[")
		for j := range m.c {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
