// SPDX-License-Identifier: MIT

// Package kg holds the knowledge-graph edge list consumed by the engine and
// the loaders that produce it from tab-separated triple files.
//
// Two on-disk layouts are understood:
//
//	split  a directory holding train.txt (head\trelation\ttail, no header),
//	       as shipped by CoDEx, WN18RR, FB15k-237 and YAGO3-10;
//	file   a single TSV with a header row, as shipped by Hetionet
//	       (source\tmetaedge\ttarget).
//
// Rows with fewer than three fields or with an empty head, relation or tail
// are dropped and counted, never forwarded.
package kg
