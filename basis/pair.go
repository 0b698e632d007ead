// SPDX-License-Identifier: MIT

package basis

// Pair is the product element a⊗b of a tensor or hom complex.
// Equality is component-wise; Key combines the component keys.
type Pair[T, U Element] struct {
	First  T
	Second U
}

// NewPair returns the pair (a, b).
func NewPair[T, U Element](a T, b U) Pair[T, U] {
	return Pair[T, U]{First: a, Second: b}
}

// Dimension returns dim(First)+dim(Second).
func (p Pair[T, U]) Dimension() int {
	return p.First.Dimension() + p.Second.Dimension()
}

// Key returns "(<first key>,<second key>)".
func (p Pair[T, U]) Key() string {
	return "(" + p.First.Key() + "," + p.Second.Key() + ")"
}

// String implements fmt.Stringer.
func (p Pair[T, U]) String() string { return p.Key() }
