// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/sparse"
)

func TestSparsity_Bounds(t *testing.T) {
	t.Parallel()

	dense := make([]sparse.Triple[int64], 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dense = append(dense, sparse.Triple[int64]{Row: i, Col: j, Val: 2})
		}
	}

	tests := []struct {
		name string
		m    *sparse.CSR[int64]
		want float64
	}{
		{"all_zero", mustBuild(t, 3), 100},
		{"fully_dense", mustBuild(t, 3, dense...), 0},
		{"chain", mustBuild(t, 3,
			sparse.Triple[int64]{Row: 0, Col: 1, Val: 2},
			sparse.Triple[int64]{Row: 1, Col: 2, Val: 2},
		), 100 * (1 - 2.0/9)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := sparse.Sparsity(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestSparsity_RandomAlwaysInRange(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 20; seed++ {
		m := mustBuild(t, 10, randomTriples(seed, 10, int(seed)*7)...)
		s, err := sparse.Sparsity(m)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestSparsity_Nil(t *testing.T) {
	t.Parallel()
	_, err := sparse.Sparsity[int64](nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
