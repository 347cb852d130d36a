// SPDX-License-Identifier: MIT

package kg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TSVHeader is the header line written by WriteTSV.
const TSVHeader = "head\trelation\ttail"

// WriteTSV writes ts as tab-separated rows, optionally preceded by
// TSVHeader. Labels containing a tab or newline cannot round-trip and are
// rejected with ErrBadLabel.
func WriteTSV(w io.Writer, ts []Triple, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for i, t := range ts {
		for _, f := range [...]string{t.Head, t.Relation, t.Tail} {
			if strings.ContainsAny(f, "\t\r\n") {
				return fmt.Errorf("triple %d: label %q: %w", i, f, ErrBadLabel)
			}
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", t.Head, t.Relation, t.Tail); err != nil {
			return err
		}
	}

	return bw.Flush()
}
