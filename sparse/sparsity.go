// SPDX-License-Identifier: MIT

package sparse

// Sparsity returns the percentage of empty cells of a canonical matrix:
//
//	100 × (1 − nnz / n²)
//
// The result is always in [0, 100]: 100 for an all-zero matrix, 0 for a
// fully dense one.
//
// Errors: ErrNilMatrix; ErrNotCanonical (stored entries of a non-canonical
// matrix may be duplicates or zeros, so they do not count cells).
// Complexity: O(1).
func Sparsity[T any](m *CSR[T]) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, sparseErrorf(opSparsity, err)
	}
	if !m.canonical {
		return 0, sparseErrorf(opSparsity, ErrNotCanonical)
	}
	cells := float64(m.n) * float64(m.n)

	return 100 * (1 - float64(len(m.data))/cells), nil
}
