// SPDX-License-Identifier: MIT

// Package derived builds new filtered streams out of existing ones.
//
//   - Dual: the coboundary complex. Boundaries are inverted, the basis is
//     iterated in reverse, filtration indices are unchanged.
//   - Tensor: the product complex on all pairs (a, b), appearing at
//     max(f(a), f(b)), with the graded Leibniz boundary
//     ∂(a⊗b) = ∂a⊗b + (-1)^dim(a)·a⊗∂b.
//   - Hom: Tensor(Dual(domain), codomain) regraded by
//     dim(b) - dim(a). Degree -1 elements are chain homotopies, degree 0
//     elements chain maps.
//   - Truncated: the sub-stream of elements up to a filtration index.
//
// Every constructor finalizes its inputs when they are still open. Derived
// streams are sealed from the moment they are built and are safe for
// concurrent readers.
//
// The sign (-1)^dim(a) uses the dimension a has in its own stream. For a Dual
// factor that is the forward dimension; its coboundary still changes the
// parity by one, so ∂∂ = 0 holds for Hom exactly as for Tensor.
package derived
