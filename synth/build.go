// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"

	"github.com/katalvlaran/primepath/kg"
)

// Constructor emits the triples of one topology under cfg.
type Constructor func(cfg config) ([]kg.Triple, error)

// Build applies opts and concatenates the output of cons in order.
func Build(opts []Option, cons ...Constructor) ([]kg.Triple, error) {
	cfg := newConfig(opts...)
	if cfg.randomRels && cfg.rng == nil {
		return nil, fmt.Errorf("random relations: %w", ErrNeedRandSource)
	}

	var out []kg.Triple
	for _, c := range cons {
		ts, err := c(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}

	return out, nil
}

// emitter accumulates triples and numbers edges for relation assignment.
type emitter struct {
	cfg config
	out []kg.Triple
}

func (e *emitter) edge(u, v int) {
	e.out = append(e.out, kg.Triple{
		Head:     e.cfg.idFn(u),
		Relation: e.cfg.relation(len(e.out)),
		Tail:     e.cfg.idFn(v),
	})
}

// Method tags and minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
	minRandomNodes   = 1
)

func validateMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// Path emits 0→1→…→n-1.
func Path(n int) Constructor {
	return func(cfg config) ([]kg.Triple, error) {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return nil, err
		}
		e := emitter{cfg: cfg}
		for i := 1; i < n; i++ {
			e.edge(i-1, i)
		}

		return e.out, nil
	}
}

// Cycle emits Path(n) closed by n-1→0.
func Cycle(n int) Constructor {
	return func(cfg config) ([]kg.Triple, error) {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return nil, err
		}
		e := emitter{cfg: cfg}
		for i := 0; i < n; i++ {
			e.edge(i, (i+1)%n)
		}

		return e.out, nil
	}
}

// Star emits hub 0 → i for i in 1..n-1.
func Star(n int) Constructor {
	return func(cfg config) ([]kg.Triple, error) {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return nil, err
		}
		e := emitter{cfg: cfg}
		for i := 1; i < n; i++ {
			e.edge(0, i)
		}

		return e.out, nil
	}
}

// Complete emits every ordered pair i→j, i≠j, i asc then j asc.
func Complete(n int) Constructor {
	return func(cfg config) ([]kg.Triple, error) {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return nil, err
		}
		e := emitter{cfg: cfg}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					e.edge(i, j)
				}
			}
		}

		return e.out, nil
	}
}

// RandomSparse includes each ordered pair (i, j) independently with
// probability p; self-loops only under WithLoops. Trials run i asc, j asc.
// p ∈ {0, 1} needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg config) ([]kg.Triple, error) {
		if err := validateMin(methodRandomSparse, n, minRandomNodes); err != nil {
			return nil, err
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		e := emitter{cfg: cfg}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.allowLoops {
					continue
				}
				switch {
				case p == 0:
					continue
				case p == 1:
					e.edge(i, j)
				case cfg.rng.Float64() < p:
					e.edge(i, j)
				}
			}
		}

		return e.out, nil
	}
}
