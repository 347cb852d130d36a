// SPDX-License-Identifier: MIT

// Package sparse provides a self-contained compressed-row (CSR) sparse matrix
// for square, non-negative, integer-weighted adjacency matrices, together with
// the handful of operations the prime-path engine needs:
//
//   - FromTriples: build from (row, col, value) triples, summing duplicates;
//   - Product / Multiply: sparse × sparse (row-wise Gustavson kernel);
//   - Canonicalize: merge duplicate coordinates, drop stored zeros, sort columns;
//   - NNZ / Sparsity: stored non-zero count and percentage of empty cells.
//
// Values are generic. Every operation takes an Arith[T] that supplies checked
// addition and multiplication, so the same kernels run on 64-bit integers
// (Int64, overflow surfaces as ErrOverflow) and on arbitrary precision
// (Big, backed by math/big).
//
// Determinism:
//
//	Loop orders are fixed (row i asc → stored entry asc). Canonical matrices
//	store each row's columns strictly ascending with no zero values, so two
//	canonical matrices with the same mathematical content are structurally
//	identical.
//
// Immutability:
//
//	A *CSR is never mutated after construction. Canonicalize and Product
//	return fresh matrices; accessors return copies.
//
// Quick example (A→B→C with relation weight 2):
//
//	A, _ := sparse.FromTriples(3, []sparse.Triple[int64]{{0, 1, 2}, {1, 2, 2}}, sparse.Int64{})
//	A2, _ := sparse.Multiply(A, A, sparse.Int64{})  // cell (0,2) = 4
//	s, _ := sparse.Sparsity(A2)                      // 88.89
package sparse
