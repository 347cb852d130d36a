// SPDX-License-Identifier: MIT

package power

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/primepath/sparse"
)

// Sequence holds the powers of a base matrix and the Step of every hop.
type Sequence[T any] struct {
	Base   *sparse.CSR[T]
	Steps  []Step
	powers []*sparse.CSR[T] // index k-1; nil when released under RetainLast
}

// Order returns the highest power computed.
func (s *Sequence[T]) Order() int { return len(s.Steps) }

// Power returns A^k, or false if k is outside 1..Order() or was released.
func (s *Sequence[T]) Power(k int) (*sparse.CSR[T], bool) {
	if k < 1 || k > len(s.powers) || s.powers[k-1] == nil {
		return nil, false
	}

	return s.powers[k-1], true
}

// Last returns A^Order().
func (s *Sequence[T]) Last() *sparse.CSR[T] {
	if len(s.powers) == 0 {
		return nil
	}

	return s.powers[len(s.powers)-1]
}

// Iterate computes A¹…A^maxOrder.
// Implementation:
//   - Stage 1: validate maxOrder and base; canonicalize base (A¹).
//   - Stage 2: observe A¹.
//   - Stage 3: for k = 2..maxOrder: check ctx, A^k = canonical(A^(k-1)·A),
//     observe, apply retention.
//
// On error the returned Sequence (when non-nil) holds only fully completed
// hops; the error says why iteration stopped.
//
// Errors: ErrOrder, sparse.ErrNilMatrix, sparse.ErrNegativeWeight (base
// holds a negative value), sparse.ErrOverflow, ErrInterrupted (wrapping ctx.Err()), any observer error.
// Complexity: Σ_k flops(A^(k-1), A).
func Iterate[T any](ctx context.Context, base *sparse.CSR[T], ar sparse.Arith[T], maxOrder int, opts ...Option) (*Sequence[T], error) {
	if maxOrder < 1 {
		return nil, fmt.Errorf("max order %d: %w", maxOrder, ErrOrder)
	}
	if base == nil {
		return nil, fmt.Errorf("base: %w", sparse.ErrNilMatrix)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a1, err := base.Canonicalize(ar)
	if err != nil {
		return nil, fmt.Errorf("hop 1: %w", err)
	}
	seq := &Sequence[T]{
		Base:   a1,
		Steps:  make([]Step, 0, maxOrder),
		powers: make([]*sparse.CSR[T], 0, maxOrder),
	}
	if err = seq.push(1, a1, 0, o); err != nil {
		return seq, err
	}

	prev := a1
	for k := 2; k <= maxOrder; k++ {
		if err = ctx.Err(); err != nil {
			return seq, fmt.Errorf("%w before hop %d: %w", ErrInterrupted, k, err)
		}
		began := time.Now()
		raw, err := sparse.Product(prev, a1, ar)
		if err != nil {
			return seq, fmt.Errorf("hop %d: %w", k, err)
		}
		next, err := raw.Canonicalize(ar)
		if err != nil {
			return seq, fmt.Errorf("hop %d: %w", k, err)
		}
		if err = seq.push(k, next, time.Since(began), o); err != nil {
			return seq, err
		}
		prev = next
	}

	return seq, nil
}

// push records A^k, notifies the observer and applies retention.
func (s *Sequence[T]) push(k int, m *sparse.CSR[T], elapsed time.Duration, o options) error {
	st, err := measure(k, m, elapsed)
	if err != nil {
		return fmt.Errorf("hop %d: %w", k, err)
	}
	if o.retain == RetainLast && len(s.powers) > 0 {
		s.powers[len(s.powers)-1] = nil
	}
	s.powers = append(s.powers, m)
	s.Steps = append(s.Steps, st)
	if o.observer != nil {
		if err = o.observer(st); err != nil {
			return fmt.Errorf("hop %d observer: %w", k, err)
		}
	}

	return nil
}
