// SPDX-License-Identifier: MIT
// Package sparse: value arithmetic.
//
// Purpose:
//   - Decouple the CSR kernels from the integer width of stored values.
//   - Make every addition and multiplication checked, so power iteration can
//     fail with ErrOverflow instead of returning wrapped values.
//
// Two implementations are provided:
//   - Int64: native int64, overflow detected per operation.
//   - Big:   *big.Int, unbounded; results are always fresh values so operands
//     are never aliased into a matrix twice.

package sparse

import (
	"math"
	"math/big"
	"strconv"
)

// Arith supplies the value semantics used by the kernels.
// Implementations must be stateless and safe to copy.
type Arith[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// IsZero reports whether v equals the additive identity.
	IsZero(v T) bool

	// Sign returns -1, 0 or +1.
	Sign(v T) int

	// Add returns a+b or ErrOverflow.
	Add(a, b T) (T, error)

	// Mul returns a*b or ErrOverflow.
	Mul(a, b T) (T, error)

	// FromUint64 converts v or returns ErrOverflow when v does not fit.
	FromUint64(v uint64) (T, error)

	// Equal reports value equality.
	Equal(a, b T) bool

	// Format renders v in base 10.
	Format(v T) string
}

// Int64 is the checked 64-bit signed arithmetic.
type Int64 struct{}

// Zero implements Arith.
func (Int64) Zero() int64 { return 0 }

// IsZero implements Arith.
func (Int64) IsZero(v int64) bool { return v == 0 }

// Sign implements Arith.
func (Int64) Sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Add implements Arith. Overflow in either direction returns ErrOverflow.
func (Int64) Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// Mul implements Arith. Overflow is detected by division round-trip, with the
// MinInt64 × -1 corner handled explicitly.
func (Int64) Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}

	return c, nil
}

// FromUint64 implements Arith.
func (Int64) FromUint64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(v), nil
}

// Equal implements Arith.
func (Int64) Equal(a, b int64) bool { return a == b }

// Format implements Arith.
func (Int64) Format(v int64) string { return strconv.FormatInt(v, 10) }

// Big is the arbitrary-precision arithmetic. A nil *big.Int is read as zero.
// Every result is a freshly allocated value.
type Big struct{}

// Zero implements Arith.
func (Big) Zero() *big.Int { return new(big.Int) }

// IsZero implements Arith.
func (Big) IsZero(v *big.Int) bool { return v == nil || v.Sign() == 0 }

// Sign implements Arith.
func (Big) Sign(v *big.Int) int {
	if v == nil {
		return 0
	}

	return v.Sign()
}

// Add implements Arith. Never fails.
func (b Big) Add(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Add(b.orZero(x), b.orZero(y)), nil
}

// Mul implements Arith. Never fails.
func (b Big) Mul(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(b.orZero(x), b.orZero(y)), nil
}

// FromUint64 implements Arith.
func (Big) FromUint64(v uint64) (*big.Int, error) { return new(big.Int).SetUint64(v), nil }

// Equal implements Arith.
func (b Big) Equal(x, y *big.Int) bool { return b.orZero(x).Cmp(b.orZero(y)) == 0 }

// Format implements Arith.
func (b Big) Format(v *big.Int) string { return b.orZero(v).String() }

// orZero maps nil to a shared zero used only as a read operand.
func (Big) orZero(v *big.Int) *big.Int {
	if v == nil {
		return bigZero
	}

	return v
}

// bigZero is read-only; it is never returned to callers.
var bigZero = new(big.Int)
