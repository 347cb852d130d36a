// SPDX-License-Identifier: MIT
// Package sparse: canonicalization.
//
// Canonical form:
//  1. each (row, col) coordinate is stored at most once; duplicates are
//     merged by summation;
//  2. no stored value is zero;
//  3. columns within a row are strictly ascending;
//  4. no stored value is negative.
//
// Canonicalize is idempotent: applying it to a canonical matrix returns the
// same matrix unchanged.

package sparse

import (
	"fmt"
	"sort"
)

// entry is a (column, value) pair staged during row canonicalization.
type entry[T any] struct {
	col int
	val T
}

// Canonicalize returns the canonical form of m.
// Implementation:
//   - Stage 1: validate m; a canonical m is returned as-is.
//   - Stage 2: per row, stage entries (rejecting negatives), stable-sort by
//     column.
//   - Stage 3: merge equal columns with ar.Add, then drop zero sums.
//
// Errors: ErrNilMatrix; ErrNegativeWeight for a stored negative value;
// ErrOverflow when a merged sum overflows.
// Complexity: O(nnz log d) time, O(nnz) space.
func (m *CSR[T]) Canonicalize(ar Arith[T]) (*CSR[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opCanonicalize, err)
	}
	if m.canonical {
		return m, nil
	}

	out := &CSR[T]{
		n:         m.n,
		indptr:    make([]int, m.n+1),
		indices:   make([]int, 0, len(m.indices)),
		data:      make([]T, 0, len(m.data)),
		canonical: true,
	}
	var staged []entry[T]
	for i := 0; i < m.n; i++ {
		lo, hi := m.indptr[i], m.indptr[i+1]
		staged = staged[:0]
		for p := lo; p < hi; p++ {
			if ar.Sign(m.data[p]) < 0 {
				return nil, sparseErrorf(opCanonicalize, fmt.Errorf("(%d,%d): %w", i, m.indices[p], ErrNegativeWeight))
			}
			staged = append(staged, entry[T]{col: m.indices[p], val: m.data[p]})
		}
		sort.SliceStable(staged, func(a, b int) bool { return staged[a].col < staged[b].col })

		for k := 0; k < len(staged); {
			col, sum := staged[k].col, staged[k].val
			k++
			for ; k < len(staged) && staged[k].col == col; k++ {
				var err error
				if sum, err = ar.Add(sum, staged[k].val); err != nil {
					return nil, sparseErrorf(opCanonicalize, err)
				}
			}
			if ar.IsZero(sum) {
				continue
			}
			out.indices = append(out.indices, col)
			out.data = append(out.data, sum)
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Equal reports whether a and b hold the same values in every cell.
// Both operands are compared in canonical form.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (while
// canonicalizing a non-canonical operand).
func Equal[T any](a, b *CSR[T], ar Arith[T]) (bool, error) {
	if err := validateBinary(a, b); err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	ca, err := a.Canonicalize(ar)
	if err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	cb, err := b.Canonicalize(ar)
	if err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	if len(ca.data) != len(cb.data) {
		return false, nil
	}
	for i := 0; i <= ca.n; i++ {
		if ca.indptr[i] != cb.indptr[i] {
			return false, nil
		}
	}
	for p := range ca.indices {
		if ca.indices[p] != cb.indices[p] || !ar.Equal(ca.data[p], cb.data[p]) {
			return false, nil
		}
	}

	return true, nil
}
