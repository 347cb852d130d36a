// SPDX-License-Identifier: MIT
// Package sparse: construction from coordinate triples.
//
// Contract:
//   - n ≥ 1; every row/col index in [0, n).
//   - Input order is irrelevant; duplicate coordinates are summed, self-loops
//     (row == col) are ordinary cells.
//   - Negative values are rejected; zero values are accepted and pruned.
//   - The input slice is never mutated.
//   - The result is canonical.

package sparse

// Triple is one coordinate entry: value Val at (Row, Col).
type Triple[T any] struct {
	Row int
	Col int
	Val T
}

// FromTriples builds an n×n canonical CSR in one pass over ts.
// Implementation:
//   - Stage 1: validate shape, indices and signs while counting row sizes.
//   - Stage 2: prefix-sum counts into indptr; scatter entries by row
//     (counting sort keeps input order within a row).
//   - Stage 3: Canonicalize merges duplicates and sorts columns.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrNegativeWeight, ErrOverflow.
// Complexity: O(n + e log d) time, O(n + e) space, e = len(ts).
func FromTriples[T any](n int, ts []Triple[T], ar Arith[T]) (*CSR[T], error) {
	if err := validateOrder(n); err != nil {
		return nil, sparseErrorf(opFromTriples, err)
	}

	counts := make([]int, n+1)
	for _, t := range ts {
		if err := validateIndex(t.Row, n); err != nil {
			return nil, sparseErrorf(opFromTriples, err)
		}
		if err := validateIndex(t.Col, n); err != nil {
			return nil, sparseErrorf(opFromTriples, err)
		}
		if ar.Sign(t.Val) < 0 {
			return nil, sparseErrorf(opFromTriples, ErrNegativeWeight)
		}
		counts[t.Row+1]++
	}
	for i := 0; i < n; i++ {
		counts[i+1] += counts[i]
	}

	raw := &CSR[T]{
		n:       n,
		indptr:  counts,
		indices: make([]int, len(ts)),
		data:    make([]T, len(ts)),
	}
	next := append([]int(nil), counts[:n]...)
	for _, t := range ts {
		p := next[t.Row]
		raw.indices[p] = t.Col
		raw.data[p] = t.Val
		next[t.Row]++
	}

	out, err := raw.Canonicalize(ar)
	if err != nil {
		return nil, sparseErrorf(opFromTriples, err)
	}

	return out, nil
}
