// SPDX-License-Identifier: MIT
// Package sparse: the CSR container and read-only accessors.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// CSR is an immutable n×n matrix in compressed-row form.
//
// Row i occupies indices[indptr[i]:indptr[i+1]] (column ids) and the same
// range of data (values). Positions without a stored entry are zero.
//
// A canonical CSR (see Canonicalize) stores each row's columns strictly
// ascending and never stores a zero value; NNZ is then the number of
// non-zero cells.
type CSR[T any] struct {
	n         int   // order (rows == cols)
	indptr    []int // len n+1, indptr[0] == 0, non-decreasing
	indices   []int // column ids, len == indptr[n]
	data      []T   // values, len == indptr[n]
	canonical bool  // set only by Canonicalize / FromTriples / Multiply
}

// New builds a CSR from raw arrays. The arrays are copied. The result is
// NOT marked canonical even if the input happens to be: duplicate columns,
// unordered columns and explicit zeros are all accepted and left for
// Canonicalize to resolve.
//
// Errors: ErrBadShape, ErrMalformed, ErrOutOfRange.
// Complexity: O(n + nnz).
func New[T any](n int, indptr, indices []int, data []T) (*CSR[T], error) {
	if err := validateRaw(n, indptr, indices, len(data)); err != nil {
		return nil, sparseErrorf(opNew, err)
	}

	return &CSR[T]{
		n:       n,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]T(nil), data...),
	}, nil
}

// Order returns n (rows == cols).
func (m *CSR[T]) Order() int { return m.n }

// NNZ returns the number of stored entries. For a canonical matrix this is
// exactly the number of non-zero cells.
// Complexity: O(1).
func (m *CSR[T]) NNZ() int { return len(m.data) }

// IsCanonical reports whether m went through canonicalization.
func (m *CSR[T]) IsCanonical() bool { return m.canonical }

// RowNNZ returns the number of stored entries in row i (0 when out of range).
func (m *CSR[T]) RowNNZ(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}

	return m.indptr[i+1] - m.indptr[i]
}

// Row returns copies of the column ids and values stored in row i, in
// storage order (column-ascending when canonical).
//
// Errors: ErrOutOfRange.
func (m *CSR[T]) Row(i int) ([]int, []T, error) {
	if err := validateIndex(i, m.n); err != nil {
		return nil, nil, sparseErrorf(opRow, err)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	cols := append([]int(nil), m.indices[lo:hi]...)
	vals := append([]T(nil), m.data[lo:hi]...)

	return cols, vals, nil
}

// At returns the stored value at (i, j) and whether an entry is stored.
// Canonical rows are searched by bisection; others are scanned and their
// duplicates are not merged (the first stored entry wins).
//
// Errors: ErrOutOfRange.
// Complexity: O(log d) canonical, O(d) otherwise, d = row length.
func (m *CSR[T]) At(i, j int) (T, bool, error) {
	var zero T
	if err := validateIndex(i, m.n); err != nil {
		return zero, false, sparseErrorf(opAt, err)
	}
	if err := validateIndex(j, m.n); err != nil {
		return zero, false, sparseErrorf(opAt, err)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	if m.canonical {
		row := m.indices[lo:hi]
		k := sort.SearchInts(row, j)
		if k < len(row) && row[k] == j {
			return m.data[lo+k], true, nil
		}

		return zero, false, nil
	}
	for p := lo; p < hi; p++ {
		if m.indices[p] == j {
			return m.data[p], true, nil
		}
	}

	return zero, false, nil
}

// Do calls f for each stored entry in row-major storage order. Iteration
// stops early when f returns false.
func (m *CSR[T]) Do(f func(i, j int, v T) bool) {
	for i := 0; i < m.n; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if !f(i, m.indices[p], m.data[p]) {
				return
			}
		}
	}
}

// String renders stored entries as "(i,j)=v" lines; meant for debugging
// small matrices.
func (m *CSR[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR(n=%d, nnz=%d, canonical=%t)\n", m.n, len(m.data), m.canonical)
	m.Do(func(i, j int, v T) bool {
		fmt.Fprintf(&sb, "  (%d,%d)=%v\n", i, j, v)
		return true
	})

	return sb.String()
}
