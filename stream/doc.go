// SPDX-License-Identifier: MIT

// Package stream implements filtered streams: chain complexes whose basis
// elements carry an integer filtration index and are iterated in filtration
// order.
//
// Stream is the read contract a persistence algorithm consumes. Explicit is
// the general mutable-until-sealed implementation over any primitive basis
// element (simplices, cells); CellStream binds an Explicit cell stream to
// the Arena that issues its cells.
//
// Lifecycle:
//
//	Open --Finalize--> Sealed
//
// While open, elements may be added, re-indexed and removed; iteration order
// is unspecified. Finalize sorts (when the storage needs it) and seals;
// further mutation fails with ErrSealed. A sealed stream is immutable and
// safe for concurrent readers.
//
// Validity: a stream is valid when every face of every element is present
// with a filtration index not above the element's. Validate reports it as a
// bool; EnsureAllFaces repairs a stream by inserting missing faces at the
// smallest index of their cofaces.
//
// Streams do not lock. Callers must not mutate an open stream from more
// than one goroutine.
package stream
