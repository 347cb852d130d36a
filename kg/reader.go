// SPDX-License-Identifier: MIT

package kg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single TSV line; Hetionet lines are well below it.
const maxLineBytes = 1 << 20

// ReadStats counts what ReadTSV saw.
type ReadStats struct {
	Rows    int // data rows, header excluded
	Kept    int
	Dropped int // incomplete rows
}

type readConfig struct {
	header          bool
	head, rel, tail int
	comment         string
}

// ReadOption customizes ReadTSV.
type ReadOption func(*readConfig)

// WithHeader skips the first non-empty line when on is true.
func WithHeader(on bool) ReadOption {
	return func(c *readConfig) { c.header = on }
}

// WithColumns sets the zero-based positions of head, relation and tail.
// The default is 0, 1, 2.
func WithColumns(head, rel, tail int) ReadOption {
	return func(c *readConfig) { c.head, c.rel, c.tail = head, rel, tail }
}

// WithComment skips lines starting with prefix. Empty disables it.
func WithComment(prefix string) ReadOption {
	return func(c *readConfig) { c.comment = prefix }
}

func (c readConfig) validate() error {
	if c.head < 0 || c.rel < 0 || c.tail < 0 {
		return ErrBadColumns
	}
	if c.head == c.rel || c.head == c.tail || c.rel == c.tail {
		return ErrBadColumns
	}

	return nil
}

func (c readConfig) width() int {
	return max(c.head, c.rel, c.tail) + 1
}

// ReadTSV reads tab-separated triples from r. Empty lines are ignored;
// rows missing a field or holding an empty one are dropped and counted in
// ReadStats.Dropped. Labels are kept verbatim: only a trailing CR is
// stripped from each line, so "A" and "A " are distinct entities.
func ReadTSV(r io.Reader, opts ...ReadOption) ([]Triple, ReadStats, error) {
	cfg := readConfig{head: 0, rel: 1, tail: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	var stats ReadStats
	if err := cfg.validate(); err != nil {
		return nil, stats, err
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []Triple
	skipHeader := cfg.header
	line := 0
	for s.Scan() {
		line++
		raw := strings.TrimRight(s.Text(), "\r")
		if raw == "" {
			continue
		}
		if cfg.comment != "" && strings.HasPrefix(raw, cfg.comment) {
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}
		stats.Rows++

		fields := strings.Split(raw, "\t")
		if len(fields) < cfg.width() {
			stats.Dropped++
			continue
		}
		t := Triple{
			Head:     fields[cfg.head],
			Relation: fields[cfg.rel],
			Tail:     fields[cfg.tail],
		}
		if !t.Complete() {
			stats.Dropped++
			continue
		}
		out = append(out, t)
		stats.Kept++
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: line %d: %w", ErrLoad, line+1, err)
	}

	return out, stats, nil
}
