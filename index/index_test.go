// SPDX-License-Identifier: MIT

package index_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/index"
	"github.com/katalvlaran/primepath/kg"
)

func TestBuild_SortedDense(t *testing.T) {
	t.Parallel()
	x, err := index.Build([]string{"C", "A", "B", "A"})
	require.NoError(t, err)
	assert.Equal(t, 3, x.Len())
	assert.Equal(t, []string{"A", "B", "C"}, x.Labels())

	id, ok := x.ID("C")
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	l, err := x.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "B", l)

	_, err = x.Label(3)
	require.ErrorIs(t, err, index.ErrUnknownLabel)
	_, err = x.Lookup("Z")
	require.ErrorIs(t, err, index.ErrUnknownLabel)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()
	_, err := index.Build(nil)
	require.ErrorIs(t, err, index.ErrMapping)
	_, err = index.Build([]string{"A", ""})
	require.ErrorIs(t, err, index.ErrMapping)
}

func TestFromTriples_DeterministicUnderPermutation(t *testing.T) {
	t.Parallel()
	ts := []kg.Triple{
		{Head: "A", Relation: "r", Tail: "B"},
		{Head: "B", Relation: "r", Tail: "C"},
		{Head: "D", Relation: "s", Tail: "A"},
		{Head: "C", Relation: "t", Tail: "C"},
	}
	ents, rels, err := index.FromTriples(ts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 10; k++ {
		perm := append([]kg.Triple(nil), ts...)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		e2, r2, err := index.FromTriples(perm)
		require.NoError(t, err)
		assert.Equal(t, ents.Labels(), e2.Labels())
		assert.Equal(t, rels.Labels(), r2.Labels())
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ents.Labels())
	assert.Equal(t, []string{"r", "s", "t"}, rels.Labels())
}

func TestFromTriples_Empty(t *testing.T) {
	t.Parallel()
	_, _, err := index.FromTriples(nil)
	require.ErrorIs(t, err, index.ErrMapping)

	_, _, err = index.FromTriples([]kg.Triple{{Head: "A", Relation: "", Tail: "B"}})
	require.ErrorIs(t, err, index.ErrMapping)
}
