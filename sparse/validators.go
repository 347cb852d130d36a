// SPDX-License-Identifier: MIT
// Package sparse: centralized validation.
//
// Each validator returns a plain sentinel; callers wrap it with their
// operation tag. All checks are pure and allocation-free.

package sparse

// validateOrder ensures n is a usable matrix order.
func validateOrder(n int) error {
	if n <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateIndex ensures 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateNotNil ensures m is non-nil.
func validateNotNil[T any](m *CSR[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateBinary is the composite NotNil(a) → NotNil(b) → same order check
// used by Product and Equal.
func validateBinary[T any](a, b *CSR[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateRaw checks the structural consistency of raw CSR arrays.
// Time: O(n + nnz). Space: O(1).
func validateRaw(n int, indptr, indices []int, dataLen int) error {
	if err := validateOrder(n); err != nil {
		return err
	}
	if len(indptr) != n+1 || indptr[0] != 0 {
		return ErrMalformed
	}
	for i := 0; i < n; i++ {
		if indptr[i+1] < indptr[i] {
			return ErrMalformed
		}
	}
	if indptr[n] != len(indices) || len(indices) != dataLen {
		return ErrMalformed
	}
	for _, j := range indices {
		if err := validateIndex(j, n); err != nil {
			return err
		}
	}

	return nil
}
