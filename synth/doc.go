// SPDX-License-Identifier: MIT

// Package synth generates synthetic knowledge graphs as ordered triple lists,
// for tests, benchmarks and quick experiments with the power engine.
//
// Constructors describe a topology (Path, Cycle, Star, Complete,
// RandomSparse); Build resolves functional options into a config and
// concatenates the triples of every constructor in call order.
//
// Determinism:
//   - Vertex labels come from the ID scheme (decimal by default).
//   - Edges are emitted in a fixed documented order.
//   - Relations are assigned round-robin over the configured labels in edge
//     order, or drawn from the RNG with WithRandomRelations.
//   - Stochastic constructors require WithSeed / WithRand.
package synth
