// SPDX-License-Identifier: MIT

// Command primepath builds prime-encoded adjacency matrices of knowledge
// graphs and measures how sparse their powers stay.
//
//	primepath run -c config.yaml
//	primepath synth cycle -n 100 -o cycle.tsv
//	primepath dot cycle.tsv --order 3 -o cycle.dot
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/primepath/logs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logs.Logger.WithError(err).Error("primepath failed")
		stop()
		os.Exit(1)
	}
}
