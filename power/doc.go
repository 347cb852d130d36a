// SPDX-License-Identifier: MIT

// Package power computes the sequence A¹, A², …, A^K of a sparse adjacency
// matrix and records how sparsity evolves hop by hop.
//
// A^k = A^(k-1) · A is formed with sparse.Product and canonicalized
// immediately (duplicates merged, zeros dropped, columns sorted), so every
// element of the sequence is a complete, independently inspectable result.
// After each hop a Step is emitted to the optional observer; observation never
// changes state.
//
// Because adjacency weights are positive, products never cancel: the support
// of A^k is exactly the set of (i, j) joined by a walk of k base edges.
// Values grow multiplicatively with k, so the arithmetic is chosen by the
// caller: sparse.Int64 fails with sparse.ErrOverflow, sparse.Big never does.
//
// Cancellation is honored only between hops.
package power
