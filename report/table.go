// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/primepath/pipeline"
)

var header = []string{
	"DATASET", "ENTITIES", "RELATIONS", "EDGES",
	"SPARSITY A¹", "SPARSITY A^K", "K", "SETUP", "CALC", "TOTAL",
}

// Table writes one aligned row per result. Sparsity columns are green when
// the final power is emptier than the base matrix and yellow otherwise.
func Table(w io.Writer, results []*pipeline.Result) error {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, h := range header {
		sep := "\t"
		if i == len(header)-1 {
			sep = "\n"
		}
		fmt.Fprint(tw, bold(h), sep)
	}
	for _, r := range results {
		paint := yellow
		if r.SparsityEnd > r.SparsityStart {
			paint = green
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			r.Dataset, r.Entities, r.Relations, r.Edges,
			paint(fmt.Sprintf("%.2f%%", r.SparsityStart)),
			paint(fmt.Sprintf("%.2f%%", r.SparsityEnd)),
			len(r.Hops),
			seconds(r.SetupTime), seconds(r.CalcTime), seconds(r.TotalTime))
	}

	return tw.Flush()
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.5fs", d.Seconds())
}

// WriteJSONLines writes each result as one JSON object per line.
func WriteJSONLines(w io.Writer, results []*pipeline.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode %q: %w", r.Dataset, err)
		}
	}

	return nil
}
