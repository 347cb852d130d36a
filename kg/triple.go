// SPDX-License-Identifier: MIT

package kg

// Triple is one (head, relation, tail) fact with opaque string labels.
type Triple struct {
	Head     string
	Relation string
	Tail     string
}

// Complete reports whether all three fields are non-empty.
func (t Triple) Complete() bool {
	return t.Head != "" && t.Relation != "" && t.Tail != ""
}

// Dataset is a named, normalized edge list. Triples keep file order;
// duplicates are preserved (they count as edges).
type Dataset struct {
	Name    string
	Triples []Triple
	Stats   ReadStats
}

// Edges returns the number of triples.
func (d *Dataset) Edges() int { return len(d.Triples) }
