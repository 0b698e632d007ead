// SPDX-License-Identifier: MIT

// Package filtration converts between real filtration values (distances,
// function levels) and the integer filtration indices that streams store.
//
// A Converter is monotone: larger values never map to smaller indices.
// Induced combines the values of two elements into the value of an element
// that needs both (always the maximum here), which is how a simplex inherits
// its appearance time from its edges.
package filtration
