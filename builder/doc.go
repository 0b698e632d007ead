// SPDX-License-Identifier: MIT

// Package builder provides ready-made filtered complexes and point clouds for
// examples, tests and benchmarks.
//
// The package offers three families of fixtures:
//
//   - Simplicial streams:
//     – SimplicialSphere(d): boundary of the (d+1)-simplex, all at index 0.
//     – Triangle, Tetrahedron: the spheres of dimension 1 and 2.
//     – Circle(m): an m-gon of vertices and edges.
//     – Torus: a 9-vertex triangulated torus.
//     – FilteredTriangle, ZomorodianCarlsson: small filtered examples with
//     distinct indices.
//   - Cellular streams:
//     – CellularSphere(d): one vertex and one d-cell glued to it.
//     – CellularTorus, CellularKleinBottle, CellularRP2: one vertex, two
//     loops and a 2-cell whose attaching degrees select the surface.
//     – CellularMobiusBand, MorozovJohansson: two-vertex examples.
//   - Point clouds ([][]float64):
//     – Square, House, Octahedron, EquispacedCircle(n): deterministic.
//     – RandomSphere, Gaussian, RandomTorus, RandomFigure8: stochastic; they
//     require WithSeed or WithRand.
//
// Guarantees:
//
//   - Streams are returned sealed.
//   - Deterministic fixtures ignore the RNG; stochastic ones draw only from it.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return sentinel errors wrapped with the
//     constructor name.
package builder
