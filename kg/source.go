// SPDX-License-Identifier: MIT

package kg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Layout names an on-disk dataset layout.
type Layout string

const (
	// LayoutSplit is a directory with train/valid/test files; only the
	// training split is read.
	LayoutSplit Layout = "split"
	// LayoutFile is a single TSV file, header on by default.
	LayoutFile Layout = "file"
)

// TrainFile is the training split read for LayoutSplit.
const TrainFile = "train.txt"

// Source describes where a dataset lives.
type Source struct {
	Name   string
	Path   string
	Layout Layout
	// Header overrides the layout's header default when non-nil.
	Header *bool
}

// Load reads src into a Dataset. ctx is checked before the file is opened;
// reading itself is not interruptible.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		path   string
		header bool
	)
	switch src.Layout {
	case LayoutSplit, "":
		path, header = filepath.Join(src.Path, TrainFile), false
	case LayoutFile:
		path, header = src.Path, true
	default:
		return nil, fmt.Errorf("%s: %q: %w", src.Name, src.Layout, ErrUnknownLayout)
	}
	if src.Header != nil {
		header = *src.Header
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, src.Name, err)
	}
	defer f.Close()

	ts, stats, err := ReadTSV(f, WithHeader(header))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	return &Dataset{Name: src.Name, Triples: ts, Stats: stats}, nil
}
