// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All kernels return these sentinels (wrapped with a call-site tag via
// sparseErrorf) and callers branch with errors.Is. No kernel panics on
// user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a matrix order is not positive.
	ErrBadShape = errors.New("sparse: order must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates operands of different order.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *CSR receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrMalformed indicates inconsistent raw CSR arrays (indptr not
	// monotone, length mismatch between indices and data, ...).
	ErrMalformed = errors.New("sparse: malformed compressed-row arrays")

	// ErrNegativeWeight is returned when a negative value is ingested.
	// Adjacency weights are primes and their sums, always positive.
	ErrNegativeWeight = errors.New("sparse: negative weight")

	// ErrOverflow is returned when an accumulated value no longer fits the
	// arithmetic's integer width. Values are never wrapped silently.
	ErrOverflow = errors.New("sparse: integer overflow")

	// ErrNotCanonical is returned by operations that are only defined on a
	// canonical matrix (Sparsity).
	ErrNotCanonical = errors.New("sparse: matrix is not canonical")
)

// sparseErrorf wraps err with the operation tag, keeping the sentinel
// reachable for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags used in wrapped errors.
const (
	opNew          = "New"
	opFromTriples  = "FromTriples"
	opCanonicalize = "Canonicalize"
	opProduct      = "Product"
	opMultiply     = "Multiply"
	opSparsity     = "Sparsity"
	opAt           = "At"
	opRow          = "Row"
	opEqual        = "Equal"
)
