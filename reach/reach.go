// SPDX-License-Identifier: MIT

// Package reach computes exact-length walk reachability over the support of
// a sparse adjacency matrix and checks powers against it.
//
// Unlike BFS, which records the first depth at which a vertex is seen,
// a layered walk expansion keeps every vertex reachable in exactly k steps,
// revisits included: with a cycle of length 2, the start vertex is reachable
// in 2, 4, 6… steps. This is the reachability relation that the support of
// A^k must reproduce when all weights are positive.
package reach

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/primepath/sparse"
)

var (
	// ErrSteps is returned for k < 1.
	ErrSteps = errors.New("reach: steps must be >= 1")

	// ErrSupportMismatch is returned by Verify when a power's non-zero
	// pattern differs from k-step walk reachability.
	ErrSupportMismatch = errors.New("reach: support differs from walk reachability")
)

// walker holds the reusable state of one layered expansion.
type walker[T any] struct {
	base   *sparse.CSR[T]
	seen   []bool // marks vertices already in the next layer
	active []int  // current layer
}

func newWalker[T any](base *sparse.CSR[T]) *walker[T] {
	n := base.Order()
	return &walker[T]{
		base:   base,
		seen:   make([]bool, n),
		active: make([]int, 0, n),
	}
}

// from returns the sorted targets of every k-step walk starting at src.
func (w *walker[T]) from(src, k int) ([]int, error) {
	w.active = append(w.active[:0], src)

	for step := 0; step < k && len(w.active) > 0; step++ {
		clear(w.seen)
		var layer []int
		for _, u := range w.active {
			cols, _, err := w.base.Row(u)
			if err != nil {
				return nil, err
			}
			for _, v := range cols {
				if !w.seen[v] {
					w.seen[v] = true
					layer = append(layer, v)
				}
			}
		}
		w.active = append(w.active[:0], layer...)
	}
	out := append([]int(nil), w.active...)
	sort.Ints(out)

	return out, nil
}

// Walks returns, for every source row i, the sorted set of j such that a
// walk of exactly k edges of base leads from i to j. Stored entries of base
// are treated as edges regardless of value.
//
// ctx is checked once per source row.
// Complexity: O(n · k · nnz) worst case; intended for small graphs.
func Walks[T any](ctx context.Context, base *sparse.CSR[T], k int) ([][]int, error) {
	if base == nil {
		return nil, sparse.ErrNilMatrix
	}
	if k < 1 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrSteps)
	}

	w := newWalker(base)
	out := make([][]int, base.Order())
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		targets, err := w.from(i, k)
		if err != nil {
			return nil, err
		}
		out[i] = targets
	}

	return out, nil
}

// Verify checks that the non-zero cells of pow are exactly the k-step walk
// targets of base. pow must be canonical (stored entries are non-zero).
func Verify[T any](ctx context.Context, base, pow *sparse.CSR[T], k int) error {
	if pow == nil {
		return sparse.ErrNilMatrix
	}
	if !pow.IsCanonical() {
		return sparse.ErrNotCanonical
	}
	walks, err := Walks(ctx, base, k)
	if err != nil {
		return err
	}
	if pow.Order() != len(walks) {
		return sparse.ErrDimensionMismatch
	}

	for i, want := range walks {
		got, _, err := pow.Row(i)
		if err != nil {
			return err
		}
		if j, ok := firstDiff(want, got); !ok {
			return fmt.Errorf("k=%d row %d col %d: %w", k, i, j, ErrSupportMismatch)
		}
	}

	return nil
}

// firstDiff compares two ascending int slices; on mismatch it returns the
// smallest column present in only one of them.
func firstDiff(a, b []int) (int, bool) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			return a[i], false
		default:
			return b[j], false
		}
	}
	if i < len(a) {
		return a[i], false
	}
	if j < len(b) {
		return b[j], false
	}

	return 0, true
}
