// SPDX-License-Identifier: MIT

package power

// Retain selects which powers a Sequence keeps.
type Retain int

const (
	// RetainAll keeps A¹…A^K.
	RetainAll Retain = iota
	// RetainLast keeps only the most recent power; earlier ones are released
	// as soon as the next hop is complete.
	RetainLast
)

// Observer receives one Step per completed hop. A non-nil error aborts the
// iteration and is returned to the caller.
type Observer func(Step) error

// Option configures Iterate.
type Option func(*options)

type options struct {
	observer Observer
	retain   Retain
}

func defaultOptions() options {
	return options{retain: RetainAll}
}

// WithObserver registers fn to be called after every hop, A¹ included.
// Panics on nil (programmer error).
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("power: WithObserver(nil)")
	}

	return func(o *options) { o.observer = fn }
}

// WithRetain sets the retention policy.
func WithRetain(r Retain) Option {
	if r != RetainAll && r != RetainLast {
		panic("power: WithRetain: unknown policy")
	}

	return func(o *options) { o.retain = r }
}
