// SPDX-License-Identifier: MIT

// Package index assigns dense integer ids to opaque labels.
//
// Labels are deduplicated and sorted lexicographically (Go string order,
// byte-wise) before ids are handed out, so the same label set always maps to
// the same ids regardless of input order. Entities and relations are indexed
// independently.
package index

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/primepath/kg"
)

// ErrMapping is returned when an index cannot be built: empty input or a
// malformed (empty) label.
var ErrMapping = errors.New("index: cannot build identifier mapping")

// ErrUnknownLabel is returned by Lookup for labels outside the index.
var ErrUnknownLabel = errors.New("index: unknown label")

// Index is an immutable bijection between labels and ids in [0, Len()).
type Index struct {
	ids    map[string]int
	labels []string // id → label, ascending
}

// Build indexes the distinct values of labels.
// Errors: ErrMapping for empty input or an empty label.
// Complexity: O(n log n).
func Build(labels []string) (*Index, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels: %w", ErrMapping)
	}

	seen := make(map[string]struct{}, len(labels))
	uniq := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("empty label: %w", ErrMapping)
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	sort.Strings(uniq)

	ids := make(map[string]int, len(uniq))
	for i, l := range uniq {
		ids[l] = i
	}

	return &Index{ids: ids, labels: uniq}, nil
}

// FromTriples builds the entity index (heads ∪ tails) and the relation index
// of ts.
// Errors: ErrMapping, tagged with the index that failed.
func FromTriples(ts []kg.Triple) (entities, relations *Index, err error) {
	if len(ts) == 0 {
		return nil, nil, fmt.Errorf("empty edge list: %w", ErrMapping)
	}

	nodes := make([]string, 0, 2*len(ts))
	rels := make([]string, 0, len(ts))
	for _, t := range ts {
		nodes = append(nodes, t.Head, t.Tail)
		rels = append(rels, t.Relation)
	}
	if entities, err = Build(nodes); err != nil {
		return nil, nil, fmt.Errorf("entities: %w", err)
	}
	if relations, err = Build(rels); err != nil {
		return nil, nil, fmt.Errorf("relations: %w", err)
	}

	return entities, relations, nil
}

// Len returns the number of distinct labels.
func (x *Index) Len() int { return len(x.labels) }

// ID returns the id of label and whether it is indexed.
func (x *Index) ID(label string) (int, bool) {
	id, ok := x.ids[label]
	return id, ok
}

// Lookup is ID with an error for unknown labels.
func (x *Index) Lookup(label string) (int, error) {
	if id, ok := x.ids[label]; ok {
		return id, nil
	}

	return 0, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
}

// Label returns the label of id.
func (x *Index) Label(id int) (string, error) {
	if id < 0 || id >= len(x.labels) {
		return "", fmt.Errorf("id %d not in [0,%d): %w", id, len(x.labels), ErrUnknownLabel)
	}

	return x.labels[id], nil
}

// Labels returns a copy of all labels in id order.
func (x *Index) Labels() []string {
	return append([]string(nil), x.labels...)
}
