// SPDX-License-Identifier: MIT

package power_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/power"
	"github.com/katalvlaran/primepath/sparse"
)

var ar = sparse.Int64{}

// chain is A→B→C with one relation mapped to prime 2.
func chain(t *testing.T) *sparse.CSR[int64] {
	t.Helper()
	m, err := sparse.FromTriples(3, []sparse.Triple[int64]{
		{Row: 0, Col: 1, Val: 2},
		{Row: 1, Col: 2, Val: 2},
	}, ar)
	require.NoError(t, err)

	return m
}

func TestIterate_ChainExample(t *testing.T) {
	t.Parallel()
	seq, err := power.Iterate(context.Background(), chain(t), ar, 3)
	require.NoError(t, err)
	require.Equal(t, 3, seq.Order())

	want := []float64{100 * (1 - 2.0/9), 100 * (1 - 1.0/9), 100}
	for k, st := range seq.Steps {
		assert.Equal(t, k+1, st.Order)
		assert.InDelta(t, want[k], st.Sparsity, 1e-9, "hop %d", k+1)
	}

	a2, ok := seq.Power(2)
	require.True(t, ok)
	v, stored, err := a2.At(0, 2)
	require.NoError(t, err)
	require.True(t, stored)
	assert.Equal(t, int64(4), v)
	assert.Equal(t, 1, a2.NNZ())

	assert.Equal(t, 0, seq.Last().NNZ())
	assert.Equal(t, 0, seq.Steps[2].RowMax)
	assert.Equal(t, 1, seq.Steps[0].RowMax)
	assert.InDelta(t, 2.0/3, seq.Steps[0].RowMean, 1e-12)
	// Row counts [1,1,0]: sample std-dev √(1/3).
	assert.InDelta(t, 0.57735, seq.Steps[0].RowStd, 1e-5)
	assert.InDelta(t, 0, seq.Steps[2].RowStd, 1e-12)
}

func TestIterate_OrderError(t *testing.T) {
	t.Parallel()
	for _, k := range []int{0, -3} {
		_, err := power.Iterate(context.Background(), chain(t), ar, k)
		require.ErrorIs(t, err, power.ErrOrder)
	}
	_, err := power.Iterate[int64](context.Background(), nil, ar, 2)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestIterate_RejectsNegativeBase(t *testing.T) {
	t.Parallel()
	// Dense 2×2 with one negative cell: A² would cancel to a diagonal.
	base, err := sparse.New(2, []int{0, 2, 4}, []int{0, 1, 0, 1}, []int64{1, 1, 1, -1})
	require.NoError(t, err)

	seq, err := power.Iterate(context.Background(), base, ar, 2)
	require.ErrorIs(t, err, sparse.ErrNegativeWeight)
	assert.Nil(t, seq)
}

func TestIterate_OrderOneIsBase(t *testing.T) {
	t.Parallel()
	base := chain(t)
	seq, err := power.Iterate(context.Background(), base, ar, 1)
	require.NoError(t, err)
	require.Len(t, seq.Steps, 1)
	eq, err := sparse.Equal(base, seq.Last(), ar)
	require.NoError(t, err)
	assert.True(t, eq)
}

// heavy is a prime whose square exceeds MaxInt64.
const heavy = 3_037_000_507

func TestIterate_OverflowIsReported(t *testing.T) {
	t.Parallel()
	base, err := sparse.FromTriples(3, []sparse.Triple[int64]{
		{Row: 0, Col: 1, Val: heavy},
		{Row: 1, Col: 2, Val: heavy},
	}, ar)
	require.NoError(t, err)

	seq, err := power.Iterate(context.Background(), base, ar, 3)
	require.ErrorIs(t, err, sparse.ErrOverflow)
	require.NotNil(t, seq)
	assert.Equal(t, 1, seq.Order(), "only completed hops are kept")
}

func TestIterate_BigMatchesInt64(t *testing.T) {
	t.Parallel()
	ts := []sparse.Triple[int64]{
		{Row: 0, Col: 1, Val: 2}, {Row: 1, Col: 2, Val: 3}, {Row: 2, Col: 0, Val: 5},
		{Row: 0, Col: 2, Val: 7}, {Row: 2, Col: 2, Val: 11}, {Row: 1, Col: 0, Val: 2},
	}
	bts := make([]sparse.Triple[*big.Int], len(ts))
	for i, tr := range ts {
		bts[i] = sparse.Triple[*big.Int]{Row: tr.Row, Col: tr.Col, Val: big.NewInt(tr.Val)}
	}
	bg := sparse.Big{}
	ib, err := sparse.FromTriples(3, ts, ar)
	require.NoError(t, err)
	bb, err := sparse.FromTriples(3, bts, bg)
	require.NoError(t, err)

	is, err := power.Iterate(context.Background(), ib, ar, 6)
	require.NoError(t, err)
	bs, err := power.Iterate(context.Background(), bb, bg, 6)
	require.NoError(t, err)

	for k := 1; k <= 6; k++ {
		im, _ := is.Power(k)
		bm, _ := bs.Power(k)
		require.Equal(t, im.NNZ(), bm.NNZ(), "hop %d", k)
		im.Do(func(i, j int, v int64) bool {
			got, ok, err := bm.At(i, j)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, big.NewInt(v).String(), got.String(), "hop %d (%d,%d)", k, i, j)
			return true
		})
		assert.Equal(t, is.Steps[k-1].Sparsity, bs.Steps[k-1].Sparsity)
	}
}

func TestIterate_ObserverAndRetention(t *testing.T) {
	t.Parallel()
	var seen []int
	seq, err := power.Iterate(context.Background(), chain(t), ar, 4,
		power.WithObserver(func(st power.Step) error {
			seen = append(seen, st.Order)
			return nil
		}),
		power.WithRetain(power.RetainLast),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, seen)

	_, ok := seq.Power(2)
	assert.False(t, ok, "released under RetainLast")
	_, ok = seq.Power(4)
	assert.True(t, ok)
	assert.NotNil(t, seq.Base)
}

func TestIterate_ObserverErrorAborts(t *testing.T) {
	t.Parallel()
	stop := errors.New("stop")
	seq, err := power.Iterate(context.Background(), chain(t), ar, 5,
		power.WithObserver(func(st power.Step) error {
			if st.Order == 2 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seq.Order())
}

func TestIterate_CanceledBetweenHops(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	seq, err := power.Iterate(ctx, chain(t), ar, 5,
		power.WithObserver(func(st power.Step) error {
			if st.Order == 2 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, power.ErrInterrupted)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, seq.Order())
}
