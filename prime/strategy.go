// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"
	"strconv"
	"strings"
)

// strategyPrefix is the textual prefix of every spacing strategy.
const strategyPrefix = "step_"

// Strategy selects every Step()-th prime from the candidates ≥ start.
// The zero value is not valid; use Step1, StepN or ParseStrategy.
type Strategy struct {
	step int
}

// Step1 takes consecutive primes.
var Step1 = Strategy{step: 1}

// StepN returns the strategy taking every k-th prime.
func StepN(k int) (Strategy, error) {
	if k < 1 {
		return Strategy{}, fmt.Errorf("step %d: %w", k, ErrUnknownStrategy)
	}

	return Strategy{step: k}, nil
}

// ParseStrategy parses "step_<k>" with k ≥ 1.
func ParseStrategy(s string) (Strategy, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), strategyPrefix)
	if !ok {
		return Strategy{}, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
	k, err := strconv.Atoi(rest)
	if err != nil {
		return Strategy{}, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}

	return StepN(k)
}

// Step returns k.
func (s Strategy) Step() int { return s.step }

// String renders the strategy as "step_<k>".
func (s Strategy) String() string { return strategyPrefix + strconv.Itoa(s.step) }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s.step < 1 {
		return nil, ErrUnknownStrategy
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
