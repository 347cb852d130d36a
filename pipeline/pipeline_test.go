// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/config"
	"github.com/katalvlaran/primepath/index"
	"github.com/katalvlaran/primepath/kg"
	"github.com/katalvlaran/primepath/pipeline"
	"github.com/katalvlaran/primepath/power"
	"github.com/katalvlaran/primepath/prime"
	"github.com/katalvlaran/primepath/sparse"
	"github.com/katalvlaran/primepath/synth"
)

// heavy is a prime whose square exceeds MaxInt64.
const heavy = 3_037_000_507

func chainDataset() *kg.Dataset {
	return &kg.Dataset{Name: "chain", Triples: []kg.Triple{
		{Head: "A", Relation: "r", Tail: "B"},
		{Head: "B", Relation: "r", Tail: "C"},
	}}
}

func settings(k int) pipeline.Settings {
	s := pipeline.DefaultSettings()
	s.MaxOrder = k

	return s
}

func TestRun_ChainExample(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	res, err := pipeline.Run(context.Background(), chainDataset(), settings(3), log)
	require.NoError(t, err)

	assert.Equal(t, "chain", res.Dataset)
	assert.Equal(t, 3, res.Entities)
	assert.Equal(t, 1, res.Relations)
	assert.Equal(t, 2, res.Edges)
	assert.Equal(t, config.PrecisionInt64, res.Precision)
	assert.InDelta(t, 77.7778, res.SparsityStart, 1e-4)
	assert.InDelta(t, 100, res.SparsityEnd, 1e-9)
	require.Len(t, res.Hops, 3)
	assert.InDelta(t, 88.8889, res.Hops[1].Sparsity, 1e-4)
	assert.GreaterOrEqual(t, res.TotalTime, res.SetupTime+res.CalcTime)

	hops := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "hop done" {
			hops++
			assert.Equal(t, "chain", e.Data["dataset"])
		}
	}
	assert.Equal(t, 3, hops)
}

func TestEncode_SumsParallelRelations(t *testing.T) {
	ds := &kg.Dataset{Name: "multi", Triples: []kg.Triple{
		{Head: "A", Relation: "likes", Tail: "B"},
		{Head: "A", Relation: "knows", Tail: "B"},
		{Head: "B", Relation: "knows", Tail: "A"},
	}}
	g, err := pipeline.Encode(ds, settings(1), sparse.Int64{})
	require.NoError(t, err)

	// knows → 2, likes → 3 (lexicographic relation order).
	p, err := g.Primes.PrimeOf("likes")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), p)

	v, ok, err := g.Adjacency.At(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), v)
	v, _, err = g.Adjacency.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestRun_StageErrors(t *testing.T) {
	t.Parallel()
	loop := &kg.Dataset{Name: "loop", Triples: []kg.Triple{{Head: "A", Relation: "r", Tail: "A"}}}

	cases := []struct {
		name   string
		ds     *kg.Dataset
		mutate func(*pipeline.Settings)
		stage  pipeline.Stage
		want   error
	}{
		{"empty", &kg.Dataset{Name: "empty"}, nil, pipeline.StageIndex, index.ErrMapping},
		{"start", chainDataset(), func(s *pipeline.Settings) { s.Start = 1 }, pipeline.StagePrime, prime.ErrInvalidStart},
		{"order", chainDataset(), func(s *pipeline.Settings) { s.MaxOrder = 0 }, pipeline.StagePower, power.ErrOrder},
		{"overflow", loop, func(s *pipeline.Settings) { s.Start = heavy }, pipeline.StagePower, sparse.ErrOverflow},
		{"precision", chainDataset(), func(s *pipeline.Settings) { s.Precision = "float" }, pipeline.StageBuild, pipeline.ErrPrecision},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := settings(3)
			if tc.mutate != nil {
				tc.mutate(&s)
			}
			log, _ := logtest.NewNullLogger()
			res, err := pipeline.Run(context.Background(), tc.ds, s, log)
			require.Nil(t, res)
			require.ErrorIs(t, err, tc.want)

			var se *pipeline.StageError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.stage, se.Stage)
			assert.Equal(t, tc.ds.Name, se.Dataset)
		})
	}
}

func TestRun_BigPrecision(t *testing.T) {
	t.Parallel()
	loop := &kg.Dataset{Name: "loop", Triples: []kg.Triple{{Head: "A", Relation: "r", Tail: "A"}}}
	s := settings(4)
	s.Start = heavy
	s.Precision = config.PrecisionBig

	log, _ := logtest.NewNullLogger()
	res, err := pipeline.Run(context.Background(), loop, s, log)
	require.NoError(t, err)
	assert.Equal(t, config.PrecisionBig, res.Precision)
	assert.InDelta(t, 0, res.SparsityEnd, 1e-9)

	// Where int64 does not overflow, both precisions agree.
	for _, p := range []config.Precision{config.PrecisionInt64, config.PrecisionBig} {
		s := settings(3)
		s.Precision = p
		res, err := pipeline.Run(context.Background(), chainDataset(), s, log)
		require.NoError(t, err)
		assert.InDelta(t, 88.8889, res.Hops[1].Sparsity, 1e-4, string(p))
	}
}

func TestRun_Verify(t *testing.T) {
	t.Parallel()
	ts, err := synth.Build(
		[]synth.Option{synth.WithSeed(11), synth.WithRelationCount(3), synth.WithRandomRelations()},
		synth.RandomSparse(40, 0.08), synth.Cycle(40),
	)
	require.NoError(t, err)

	s := settings(4)
	s.Verify = true
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	res, err := pipeline.Run(context.Background(), &kg.Dataset{Name: "rand", Triples: ts}, s, log)
	require.NoError(t, err)
	assert.Equal(t, 40, res.Entities)
	assert.Len(t, res.Hops, 4)
	assert.Equal(t, "supports match walk reachability", hook.LastEntry().Message)
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.tsv")
	require.NoError(t, os.WriteFile(good, []byte("head\trelation\ttail\nA\tr\tB\nB\tr\tC\n"), 0o644))
	bad := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(bad, []byte("head\trelation\ttail\nA\t\tB\n"), 0o644))

	srcs := []kg.Source{
		{Name: "missing", Path: filepath.Join(dir, "nope"), Layout: kg.LayoutSplit},
		{Name: "bad", Path: bad, Layout: kg.LayoutFile},
		{Name: "good", Path: good, Layout: kg.LayoutFile},
	}
	var sunk []string
	sink := func(r *pipeline.Result) error {
		sunk = append(sunk, r.Dataset)
		return nil
	}

	log, _ := logtest.NewNullLogger()
	out, err := pipeline.RunAll(context.Background(), srcs, settings(2), log, sink)
	require.Error(t, err)
	require.ErrorIs(t, err, kg.ErrLoad)
	require.ErrorIs(t, err, index.ErrMapping)

	require.Len(t, out, 1)
	assert.Equal(t, "good", out[0].Dataset)
	assert.Equal(t, []string{"good"}, sunk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err = pipeline.RunAll(ctx, srcs[2:], settings(2), log, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}
