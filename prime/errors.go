// SPDX-License-Identifier: MIT

package prime

import "errors"

// Configuration errors.
var (
	// ErrInvalidStart is returned when the starting value is below 2.
	ErrInvalidStart = errors.New("prime: starting value must be >= 2")

	// ErrInvalidCount is returned when zero or fewer primes are requested.
	ErrInvalidCount = errors.New("prime: relation count must be > 0")

	// ErrUnknownStrategy is returned for an unparseable spacing strategy.
	ErrUnknownStrategy = errors.New("prime: unknown spacing strategy")
)

// ErrExhausted is returned when the candidate search runs past 2^64-1.
var ErrExhausted = errors.New("prime: no more 64-bit candidates")
