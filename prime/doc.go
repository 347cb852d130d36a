// SPDX-License-Identifier: MIT

// Package prime maps relation ids to distinct prime weights.
//
// Each relation of a knowledge graph is encoded as a prime so that the
// product of weights along a path is (before any summation) a unique
// factorization of the relations it used. The selection is controlled by a
// starting value (the smallest admissible candidate) and a spacing Strategy:
//
//	step_1  the R smallest primes ≥ start, consecutively;
//	step_k  every k-th prime ≥ start (k-1 primes skipped between picks),
//	        which spreads the weights apart and makes coincidental equal
//	        path sums between different relation compositions rarer.
//
// Every strategy yields a strictly increasing sequence of distinct primes,
// all ≥ start.
package prime
