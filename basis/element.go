// SPDX-License-Identifier: MIT

package basis

// Element is the capability shared by every basis element.
//
// Key returns a canonical identity string: equal elements have equal keys and
// distinct elements have distinct keys. Streams use it to index elements, so
// it must be stable for the lifetime of the element.
type Element interface {
	Dimension() int
	Key() string
}

// Primitive is an element that carries its own signed boundary.
// Boundary and BoundaryCoefficients are aligned index for index and are
// empty for 0-dimensional elements.
type Primitive[T any] interface {
	Element
	Boundary() []T
	BoundaryCoefficients() []int
}

// Leibniz assembles the boundary of the product a⊗b from the boundaries of
// its factors:
//
//	faces        = [(∂a_0, b), …, (∂a_p, b), (a, ∂b_0), …, (a, ∂b_q)]
//	coefficients = [c_a_0, …, c_a_p, s·c_b_0, …, s·c_b_q],  s = (-1)^dimA
//
// dimA is the dimension of a in the complex it is taken from. da/ca and db/cb
// must be aligned pairs.
//
// Complexity: O(p+q) time and space.
func Leibniz[T, U Element](a T, dimA int, da []T, ca []int, b U, db []U, cb []int) ([]Pair[T, U], []int) {
	faces := make([]Pair[T, U], 0, len(da)+len(db))
	coefficients := make([]int, 0, len(ca)+len(cb))

	for i, face := range da {
		faces = append(faces, Pair[T, U]{First: face, Second: b})
		coefficients = append(coefficients, ca[i])
	}

	sign := 1
	if dimA%2 != 0 {
		sign = -1
	}
	for j, face := range db {
		faces = append(faces, Pair[T, U]{First: a, Second: face})
		coefficients = append(coefficients, sign*cb[j])
	}

	return faces, coefficients
}

// ProductBoundary returns the Leibniz boundary of a pair of primitive
// elements, using their own boundaries and dimensions.
func ProductBoundary[T Primitive[T], U Primitive[U]](p Pair[T, U]) ([]Pair[T, U], []int) {
	return Leibniz(
		p.First, p.First.Dimension(), p.First.Boundary(), p.First.BoundaryCoefficients(),
		p.Second, p.Second.Boundary(), p.Second.BoundaryCoefficients(),
	)
}

// alternatingSigns returns [+1, -1, +1, …] of length n.
func alternatingSigns(n int) []int {
	signs := make([]int, n)
	for i := range signs {
		if i%2 == 0 {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
	}

	return signs
}
