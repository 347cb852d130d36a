// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"
	"math"
	"math/big"
)

// IsPrime reports whether c is prime. Exact for every uint64: big.Int's
// ProbablyPrime(0) runs Baillie-PSW, which has no counterexample below 2^64.
func IsPrime(c uint64) bool {
	switch {
	case c < 2:
		return false
	case c < 4:
		return true
	case c%2 == 0:
		return false
	}

	return new(big.Int).SetUint64(c).ProbablyPrime(0)
}

// Generate returns count primes ≥ start picked by s, strictly increasing.
//
// Errors: ErrInvalidCount, ErrInvalidStart, ErrUnknownStrategy, ErrExhausted.
// Complexity: O(count · step · gap) primality tests, gap ≈ ln(p).
func Generate(count int, start uint64, s Strategy) ([]uint64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}
	if start < 2 {
		return nil, fmt.Errorf("start %d: %w", start, ErrInvalidStart)
	}
	if s.step < 1 {
		return nil, fmt.Errorf("step %d: %w", s.step, ErrUnknownStrategy)
	}

	out := make([]uint64, 0, count)
	seen := 0 // primes encountered so far
	for c := start; ; c++ {
		if IsPrime(c) {
			if seen%s.step == 0 {
				out = append(out, c)
				if len(out) == count {
					return out, nil
				}
			}
			seen++
		}
		if c == math.MaxUint64 {
			return nil, fmt.Errorf("after %d of %d primes: %w", len(out), count, ErrExhausted)
		}
	}
}
