// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/primepath/config"
	"github.com/katalvlaran/primepath/kg"
	"github.com/katalvlaran/primepath/logs"
	"github.com/katalvlaran/primepath/power"
	"github.com/katalvlaran/primepath/reach"
	"github.com/katalvlaran/primepath/sparse"
)

// Result is the summary record of one dataset.
type Result struct {
	Dataset       string           `json:"dataset"`
	Entities      int              `json:"entities"`
	Relations     int              `json:"relations"`
	Edges         int              `json:"edges"`
	SparsityStart float64          `json:"sparsity_start"`
	SparsityEnd   float64          `json:"sparsity_end"`
	Hops          []power.Step     `json:"hops"`
	SetupTime     time.Duration    `json:"setup_time"`
	CalcTime      time.Duration    `json:"calc_time"`
	TotalTime     time.Duration    `json:"total_time"`
	Precision     config.Precision `json:"precision"`
}

// Run processes ds with the cell type selected by s.Precision.
// log may be nil, in which case logs.Logger is used.
//
// SetupTime covers the index, prime and build stages; CalcTime covers power
// iteration; TotalTime also includes verification.
func Run(ctx context.Context, ds *kg.Dataset, s Settings, log logrus.FieldLogger) (*Result, error) {
	if log == nil {
		log = logs.Logger
	}
	switch s.Precision {
	case config.PrecisionInt64, "":
		return run[int64](ctx, ds, s, sparse.Int64{}, log)
	case config.PrecisionBig:
		return run[*big.Int](ctx, ds, s, sparse.Big{}, log)
	default:
		return nil, stageErr(datasetName(ds), StageBuild, fmt.Errorf("%q: %w", s.Precision, ErrPrecision))
	}
}

func run[T any](ctx context.Context, ds *kg.Dataset, s Settings, ar sparse.Arith[T], log logrus.FieldLogger) (*Result, error) {
	name := datasetName(ds)
	if s.MaxOrder < 1 {
		return nil, stageErr(name, StagePower, fmt.Errorf("max order %d: %w", s.MaxOrder, power.ErrOrder))
	}
	log = log.WithField("dataset", name)
	began := time.Now()

	g, err := Encode(ds, s, ar)
	if err != nil {
		return nil, err
	}
	setup := time.Since(began)
	log.WithFields(logrus.Fields{
		"stage":     StageBuild,
		"entities":  g.Entities.Len(),
		"relations": g.Relations.Len(),
		"nnz":       g.Adjacency.NNZ(),
		"elapsed":   setup,
	}).Info("adjacency built")

	retain := power.RetainLast
	if s.Verify {
		retain = power.RetainAll
	}
	observe := func(st power.Step) error {
		log.WithFields(logrus.Fields{
			"stage":    StagePower,
			"hop":      st.Order,
			"nnz":      st.NNZ,
			"sparsity": fmt.Sprintf("%.2f", st.Sparsity),
		}).Info("hop done")
		return nil
	}
	calcBegan := time.Now()
	seq, err := power.Iterate(ctx, g.Adjacency, ar, s.MaxOrder,
		power.WithObserver(observe), power.WithRetain(retain))
	if err != nil {
		return nil, stageErr(name, StagePower, err)
	}
	calc := time.Since(calcBegan)

	if s.Verify {
		for k := 1; k <= seq.Order(); k++ {
			pk, _ := seq.Power(k)
			if err = reach.Verify(ctx, seq.Base, pk, k); err != nil {
				return nil, stageErr(name, StageVerify, err)
			}
		}
		log.WithField("stage", StageVerify).Debug("supports match walk reachability")
	}

	precision := s.Precision
	if precision == "" {
		precision = config.PrecisionInt64
	}

	return &Result{
		Dataset:       name,
		Entities:      g.Entities.Len(),
		Relations:     g.Relations.Len(),
		Edges:         ds.Edges(),
		SparsityStart: seq.Steps[0].Sparsity,
		SparsityEnd:   seq.Steps[len(seq.Steps)-1].Sparsity,
		Hops:          seq.Steps,
		SetupTime:     setup,
		CalcTime:      calc,
		TotalTime:     time.Since(began),
		Precision:     precision,
	}, nil
}

// Sink receives each successful Result as soon as it is available.
type Sink func(*Result) error

// RunAll loads and runs every source in order. A failing dataset is logged
// and skipped; the next one still runs. The returned error joins every
// dataset failure. Cancellation of ctx stops the loop.
func RunAll(ctx context.Context, srcs []kg.Source, s Settings, log logrus.FieldLogger, sink Sink) ([]*Result, error) {
	if log == nil {
		log = logs.Logger
	}
	var (
		out  []*Result
		errs []error
	)
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := runSource(ctx, src, s, log)
		if err != nil {
			log.WithError(err).WithField("dataset", src.Name).Error("dataset failed")
			errs = append(errs, err)
			continue
		}
		if sink != nil {
			if err = sink(res); err != nil {
				errs = append(errs, fmt.Errorf("dataset %q: sink: %w", src.Name, err))
			}
		}
		out = append(out, res)
	}

	return out, errors.Join(errs...)
}

func runSource(ctx context.Context, src kg.Source, s Settings, log logrus.FieldLogger) (*Result, error) {
	ds, err := kg.Load(ctx, src)
	if err != nil {
		return nil, stageErr(src.Name, StageLoad, err)
	}
	log.WithFields(logrus.Fields{
		"dataset": ds.Name,
		"stage":   StageLoad,
		"rows":    ds.Stats.Rows,
		"dropped": ds.Stats.Dropped,
	}).Info("dataset loaded")

	return Run(ctx, ds, s, log)
}
