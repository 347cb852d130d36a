// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"

	"github.com/katalvlaran/primepath/index"
)

// Assignment is the relation id → prime bijection of one dataset.
type Assignment struct {
	relations *index.Index
	primes    []uint64 // relation id → prime
	strategy  Strategy
	start     uint64
}

// Assign maps every relation of relations to a distinct prime: relation id
// i receives the i-th selected prime, so lexicographically smaller labels
// get smaller primes.
func Assign(relations *index.Index, start uint64, s Strategy) (*Assignment, error) {
	if relations == nil {
		return nil, fmt.Errorf("nil relation index: %w", ErrInvalidCount)
	}
	ps, err := Generate(relations.Len(), start, s)
	if err != nil {
		return nil, err
	}

	return &Assignment{relations: relations, primes: ps, strategy: s, start: start}, nil
}

// Len returns the number of relations.
func (a *Assignment) Len() int { return len(a.primes) }

// Prime returns the prime of relation id.
func (a *Assignment) Prime(id int) (uint64, bool) {
	if id < 0 || id >= len(a.primes) {
		return 0, false
	}

	return a.primes[id], true
}

// PrimeOf returns the prime of a relation label.
func (a *Assignment) PrimeOf(label string) (uint64, error) {
	id, err := a.relations.Lookup(label)
	if err != nil {
		return 0, err
	}

	return a.primes[id], nil
}

// Primes returns a copy of all primes in relation-id order.
func (a *Assignment) Primes() []uint64 { return append([]uint64(nil), a.primes...) }

// Strategy returns the spacing strategy used.
func (a *Assignment) Strategy() Strategy { return a.strategy }

// Start returns the starting value used.
func (a *Assignment) Start() uint64 { return a.start }
