// SPDX-License-Identifier: MIT
// Package sparse: sparse × sparse product.

package sparse

// Product returns a·b with (a·b)[i,j] = Σ_m a[i,m]·b[m,j] over every m where
// both factors are stored. The result is NOT canonical: each row lists its
// columns in first-discovery order and zero sums are kept. Call
// Canonicalize (or use Multiply) before measuring or comparing.
//
// Implementation (row-wise Gustavson):
//   - Stage 1: validate operands (non-nil, same order).
//   - Stage 2: for each row i of a, scatter a[i,m]·b[m,*] into a dense
//     accumulator guarded by a row marker, recording touched columns.
//   - Stage 3: gather touched columns into the output row.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (any product or
// partial sum that does not fit the arithmetic).
// Complexity: O(flops + n) time, O(n + nnz(out)) space, where
// flops = Σ_i Σ_{m ∈ row i of a} |row m of b|.
func Product[T any](a, b *CSR[T], ar Arith[T]) (*CSR[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, sparseErrorf(opProduct, err)
	}

	n := a.n
	acc := make([]T, n)
	mark := make([]int, n)
	for j := range mark {
		mark[j] = -1
	}
	touched := make([]int, 0, n)

	out := &CSR[T]{
		n:       n,
		indptr:  make([]int, n+1),
		indices: make([]int, 0, len(a.indices)),
		data:    make([]T, 0, len(a.data)),
	}
	for i := 0; i < n; i++ {
		touched = touched[:0]
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			m, av := a.indices[p], a.data[p]
			for q := b.indptr[m]; q < b.indptr[m+1]; q++ {
				j := b.indices[q]
				prod, err := ar.Mul(av, b.data[q])
				if err != nil {
					return nil, sparseErrorf(opProduct, err)
				}
				if mark[j] != i {
					mark[j] = i
					acc[j] = prod
					touched = append(touched, j)
					continue
				}
				if acc[j], err = ar.Add(acc[j], prod); err != nil {
					return nil, sparseErrorf(opProduct, err)
				}
			}
		}
		for _, j := range touched {
			out.indices = append(out.indices, j)
			out.data = append(out.data, acc[j])
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Multiply is Product followed by Canonicalize.
func Multiply[T any](a, b *CSR[T], ar Arith[T]) (*CSR[T], error) {
	raw, err := Product(a, b, ar)
	if err != nil {
		return nil, sparseErrorf(opMultiply, err)
	}
	out, err := raw.Canonicalize(ar)
	if err != nil {
		return nil, sparseErrorf(opMultiply, err)
	}

	return out, nil
}
