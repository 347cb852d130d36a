// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Option mutates the build config. Constructors of options validate their
// arguments and panic on nonsensical values (programmer error).
type Option func(*config)

// IDFn maps a vertex index to its label. It must be pure.
type IDFn func(idx int) string

// config is resolved once per Build and passed by value to constructors.
type config struct {
	idFn       IDFn
	rng        *rand.Rand
	relations  []string
	randomRels bool
	allowLoops bool
}

const defaultRelation = "r"

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:      DecimalID,
		relations: []string{defaultRelation},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// relation picks the label of the e-th emitted edge.
func (c config) relation(e int) string {
	if c.randomRels && c.rng != nil {
		return c.relations[c.rng.Intn(len(c.relations))]
	}

	return c.relations[e%len(c.relations)]
}

// WithIDScheme sets the vertex label scheme.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("synth: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithPrefix labels vertices prefix+index ("e0", "e1", ...).
func WithPrefix(prefix string) Option {
	return WithIDScheme(func(idx int) string { return prefix + strconv.Itoa(idx) })
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs the given RNG.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithRelations sets the relation labels edges are drawn from.
func WithRelations(labels ...string) Option {
	if len(labels) == 0 {
		panic("synth: WithRelations: at least one label required")
	}
	for _, l := range labels {
		if l == "" {
			panic("synth: WithRelations: empty label")
		}
	}
	cp := append([]string(nil), labels...)

	return func(c *config) { c.relations = cp }
}

// WithRelationCount is WithRelations("r0", ..., "r{k-1}").
func WithRelationCount(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("synth: WithRelationCount(%d)", k))
	}
	labels := make([]string, k)
	for i := range labels {
		labels[i] = "r" + strconv.Itoa(i)
	}

	return WithRelations(labels...)
}

// WithRandomRelations draws each edge's relation from the RNG instead of
// round-robin. Requires WithSeed/WithRand at build time.
func WithRandomRelations() Option {
	return func(c *config) { c.randomRels = true }
}

// WithLoops allows self-loops in RandomSparse.
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// DecimalID labels vertices "0", "1", ...
func DecimalID(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnID labels vertices "A".."Z", "AA", "AB", ...
// Panics if idx < 0.
func ExcelColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("synth: ExcelColumnID: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
