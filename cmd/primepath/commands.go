// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primepath/config"
	"github.com/katalvlaran/primepath/kg"
	"github.com/katalvlaran/primepath/logs"
	"github.com/katalvlaran/primepath/pipeline"
	"github.com/katalvlaran/primepath/power"
	"github.com/katalvlaran/primepath/report"
	"github.com/katalvlaran/primepath/sparse"
	"github.com/katalvlaran/primepath/synth"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "primepath",
		Short:         "Prime-encoded knowledge graph adjacency and sparse power iteration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newSynthCmd(), newDotCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var (
		path      string
		maxOrder  int
		precision string
		verify    bool
		jsonl     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured dataset and print the summary table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("max-order") {
				cfg.MaxOrder = maxOrder
			}
			if flags.Changed("precision") {
				cfg.Precision = config.Precision(precision)
			}
			if flags.Changed("verify") {
				cfg.Verify = verify
			}
			if flags.Changed("jsonl") {
				cfg.Output.JSONL = jsonl
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			closer, err := logs.Init(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()

			srcs := make([]kg.Source, len(cfg.Datasets))
			for i, d := range cfg.Datasets {
				srcs[i] = d.Source()
			}

			var sink pipeline.Sink
			if cfg.Output.JSONL != "" {
				f, err := os.Create(cfg.Output.JSONL)
				if err != nil {
					return fmt.Errorf("jsonl output: %w", err)
				}
				defer f.Close()
				sink = func(r *pipeline.Result) error {
					return report.WriteJSONLines(f, []*pipeline.Result{r})
				}
			}

			results, runErr := pipeline.RunAll(cmd.Context(), srcs, pipeline.SettingsFrom(cfg), logs.Logger, sink)
			if err = report.Table(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			return runErr
		},
	}
	f := cmd.Flags()
	f.StringVarP(&path, "config", "c", "config.yaml", "YAML configuration file")
	f.IntVar(&maxOrder, "max-order", 0, "override max_order")
	f.StringVar(&precision, "precision", "", "override precision (int64|big)")
	f.BoolVar(&verify, "verify", false, "check every power against walk reachability")
	f.StringVar(&jsonl, "jsonl", "", "also write results as JSON Lines to this file")

	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		n         int
		p         float64
		seed      int64
		relations int
		header    bool
		out       string
	)
	cmd := &cobra.Command{
		Use:       "synth <shape>",
		Short:     "Write a synthetic graph as TSV",
		ValidArgs: synth.Shapes,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if relations < 1 {
				return fmt.Errorf("--relations must be ≥ 1, got %d", relations)
			}
			cons, err := synth.ByName(args[0], n, p)
			if err != nil {
				return err
			}
			opts := []synth.Option{synth.WithRelationCount(relations)}
			if cmd.Flags().Changed("seed") || args[0] == "random" {
				opts = append(opts, synth.WithSeed(seed))
			}
			ts, err := synth.Build(opts, cons)
			if err != nil {
				return err
			}

			return withOutput(cmd, out, func(w io.Writer) error {
				return kg.WriteTSV(w, ts, header)
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "nodes", "n", 10, "number of vertices")
	f.Float64VarP(&p, "prob", "p", 0.1, "edge probability (random only)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&relations, "relations", 1, "number of relation labels")
	f.BoolVar(&header, "header", true, "write a header line")
	f.StringVarP(&out, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newDotCmd() *cobra.Command {
	var (
		order     int
		header    bool
		precision string
		maxNodes  int
		out       string
	)
	cmd := &cobra.Command{
		Use:   "dot <dataset.tsv>",
		Short: "Render the support of A^K of a TSV dataset as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := kg.Load(cmd.Context(), kg.Source{
				Name: args[0], Path: args[0], Layout: kg.LayoutFile, Header: &header,
			})
			if err != nil {
				return err
			}
			s := pipeline.DefaultSettings()
			s.MaxOrder = order

			var dot string
			switch config.Precision(precision) {
			case config.PrecisionInt64:
				dot, err = renderPower[int64](cmd, ds, s, sparse.Int64{}, maxNodes)
			case config.PrecisionBig:
				dot, err = renderPower[*big.Int](cmd, ds, s, sparse.Big{}, maxNodes)
			default:
				err = fmt.Errorf("%q: %w", precision, pipeline.ErrPrecision)
			}
			if err != nil {
				return err
			}

			return withOutput(cmd, out, func(w io.Writer) error {
				_, err := io.WriteString(w, dot)
				return err
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&order, "order", "k", 1, "power to render")
	f.BoolVar(&header, "header", true, "dataset has a header line")
	f.StringVar(&precision, "precision", string(config.PrecisionInt64), "cell precision (int64|big)")
	f.IntVar(&maxNodes, "max-nodes", report.DefaultMaxNodes, "refuse graphs with more entities")
	f.StringVarP(&out, "output", "o", "", "output file (default stdout)")

	return cmd
}

func renderPower[T any](cmd *cobra.Command, ds *kg.Dataset, s pipeline.Settings, ar sparse.Arith[T], maxNodes int) (string, error) {
	g, err := pipeline.Encode(ds, s, ar)
	if err != nil {
		return "", err
	}
	if g.Entities.Len() > maxNodes {
		return "", fmt.Errorf("%d entities > %d: %w", g.Entities.Len(), maxNodes, report.ErrTooLarge)
	}
	seq, err := power.Iterate(cmd.Context(), g.Adjacency, ar, s.MaxOrder, power.WithRetain(power.RetainLast))
	if err != nil {
		return "", err
	}

	return report.DOT(seq.Last(), ar, g.Entities,
		report.WithGraphName(fmt.Sprintf("%s^%d", ds.Name, s.MaxOrder)),
		report.WithMaxNodes(maxNodes),
		report.WithIsolated())
}

// withOutput runs write against path, or against the command's stdout when
// path is empty.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
