// SPDX-License-Identifier: MIT

// Package primepath measures how the sparsity of a knowledge graph's
// adjacency matrix evolves under repeated multiplication.
//
// Every relation label is mapped to a distinct prime; the adjacency cell of
// (head, tail) holds the sum of the primes of all relations linking them.
// Powers A², A³, … then accumulate products of primes along walks, and the
// share of empty cells after every hop tells how quickly multi-hop context
// fills the graph.
//
// Layout:
//
//	index/    deterministic label → id mapping
//	prime/    prime generation and relation → prime assignment
//	sparse/   generic CSR matrix: build, canonicalize, multiply, sparsity
//	power/    power iteration with per-hop statistics
//	reach/    k-step walk reachability, used to verify power supports
//	kg/       TSV dataset loading and writing
//	synth/    synthetic graph generators
//	pipeline/ per-dataset orchestration with stage-tagged errors
//	report/   summary table, JSON Lines, Graphviz DOT
//	config/   YAML run configuration
//	logs/     shared logrus logger
//	cmd/primepath CLI (run, synth, dot)
//
// Matrix cells are checked int64 by default; overflow fails the run with
// sparse.ErrOverflow. Arbitrary precision (*big.Int) is one setting away.
package primepath
