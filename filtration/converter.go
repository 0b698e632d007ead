// SPDX-License-Identifier: MIT

package filtration

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Converter maps filtration values to indices and back.
type Converter interface {
	// Index returns the filtration index of value.
	Index(value float64) int
	// Value returns a representative value of index.
	Value(index int) float64
	// Induced returns the value of an element that requires both inputs.
	Induced(a, b float64) float64
	// Initial returns the smallest value of the filtration.
	Initial() float64
}

// IncreasingLinear buckets [Min, Max] into equal-width divisions.
// Index(v) = trunc((v - Min) / Delta); values past Max keep counting up.
type IncreasingLinear struct {
	divisions int
	min, max  float64
	delta     float64
}

// NewIncreasingLinear returns a linear converter with the given number of
// divisions over [min, max]. A degenerate range (min == max) maps every
// value to index 0.
func NewIncreasingLinear(divisions int, min, max float64) (*IncreasingLinear, error) {
	if divisions < 1 {
		return nil, fmt.Errorf("NewIncreasingLinear: divisions=%d: %w", divisions, ErrBadDivisions)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		return nil, fmt.Errorf("NewIncreasingLinear: [%g, %g]: %w", min, max, ErrBadRange)
	}

	return &IncreasingLinear{
		divisions: divisions,
		min:       min,
		max:       max,
		delta:     (max - min) / float64(divisions),
	}, nil
}

func (c *IncreasingLinear) Index(value float64) int {
	if c.delta == 0 {
		return 0
	}

	return int((value - c.min) / c.delta)
}

func (c *IncreasingLinear) Value(index int) float64 { return c.min + c.delta*float64(index) }

func (c *IncreasingLinear) Induced(a, b float64) float64 { return math.Max(a, b) }

func (c *IncreasingLinear) Initial() float64 { return c.min }

// Divisions returns the number of divisions.
func (c *IncreasingLinear) Divisions() int { return c.divisions }

// Delta returns the width of one division.
func (c *IncreasingLinear) Delta() float64 { return c.delta }

// External uses an explicit sorted list of values: index i is the i-th
// smallest value, and an arbitrary value maps to the largest index whose
// value does not exceed it (clamped to the ends).
type External struct {
	values []float64
}

// NewExternal returns a converter over a copy of values.
func NewExternal(values []float64) (*External, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewExternal: %w", ErrNoValues)
	}
	vs := slices.Clone(values)
	slices.Sort(vs)

	return &External{values: vs}, nil
}

func (c *External) Index(value float64) int {
	n := len(c.values)
	if value <= c.values[0] {
		return 0
	}
	if value >= c.values[n-1] {
		return n - 1
	}
	i := sort.SearchFloat64s(c.values, value)
	if c.values[i] == value {
		return i
	}

	return i - 1
}

func (c *External) Value(index int) float64 {
	index = max(0, min(index, len(c.values)-1))

	return c.values[index]
}

func (c *External) Induced(a, b float64) float64 { return math.Max(a, b) }

func (c *External) Initial() float64 { return c.values[0] }

type identity struct{}

// Identity truncates values to integers and maps indices back unchanged.
var Identity Converter = identity{}

func (identity) Index(value float64) int { return int(value) }

func (identity) Value(index int) float64 { return float64(index) }

func (identity) Induced(a, b float64) float64 { return math.Max(a, b) }

func (identity) Initial() float64 { return 0 }
