// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/sparse"
)

// ar is the default arithmetic used across tests.
var ar = sparse.Int64{}

// mustBuild builds an n×n canonical matrix from triples or fails the test.
func mustBuild(tb testing.TB, n int, ts ...sparse.Triple[int64]) *sparse.CSR[int64] {
	tb.Helper()
	m, err := sparse.FromTriples(n, ts, ar)
	require.NoError(tb, err)

	return m
}

// cells flattens a matrix into a map keyed by [row, col].
func cells(m *sparse.CSR[int64]) map[[2]int]int64 {
	out := make(map[[2]int]int64, m.NNZ())
	m.Do(func(i, j int, v int64) bool {
		out[[2]int{i, j}] = v
		return true
	})

	return out
}

// randomTriples draws e triples over n nodes with weights from primes.
// Deterministic for a fixed seed.
func randomTriples(seed int64, n, e int) []sparse.Triple[int64] {
	primes := []int64{2, 3, 5, 7, 11, 13}
	rng := rand.New(rand.NewSource(seed))
	ts := make([]sparse.Triple[int64], e)
	for k := range ts {
		ts[k] = sparse.Triple[int64]{
			Row: rng.Intn(n),
			Col: rng.Intn(n),
			Val: primes[rng.Intn(len(primes))],
		}
	}

	return ts
}
