// SPDX-License-Identifier: MIT

// Package basis defines the basis elements of a chain complex: the atomic
// generators a filtered stream stores, orders and hands to a persistence
// algorithm.
//
// Three variants are provided:
//
//   - Simplex: a sorted, duplicate-free set of vertex indices. Equality is by
//     value: two simplices with the same vertices are the same element.
//   - Cell: a CW cell with an explicit boundary list and explicit attaching
//     degrees. Equality is by identity: two cells may share an identical
//     boundary and still be distinct. Ids are issued by an Arena.
//   - Pair: the product of two elements, used by tensor and hom complexes.
//
// Every variant satisfies Element (Dimension, Key). Simplex and *Cell also
// satisfy Primitive, i.e. they know their own signed boundary. The boundary
// of a Pair depends on the complexes its factors live in (a factor from a
// dual complex has a coboundary, not a boundary), so it is assembled by
// Leibniz from factor boundaries supplied by the caller.
//
// Boundary conventions:
//
//	∂[v0,…,vk]  = Σ (-1)^i [v0,…,v̂i,…,vk]          (index-deletion order)
//	∂(a ⊗ b)    = ∂a ⊗ b  +  (-1)^dim(a) · a ⊗ ∂b   (graded Leibniz rule)
//
// Everything in this package is immutable after construction and safe for
// concurrent reads. Arena is the only mutable type and is not safe for
// concurrent use.
package basis
