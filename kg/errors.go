// SPDX-License-Identifier: MIT

package kg

import "errors"

var (
	// ErrLoad wraps every I/O or decoding failure while reading a dataset.
	ErrLoad = errors.New("kg: cannot load dataset")

	// ErrUnknownLayout is returned for a Source.Layout other than split/file.
	ErrUnknownLayout = errors.New("kg: unknown dataset layout")

	// ErrBadColumns is returned when column positions are negative or repeat.
	ErrBadColumns = errors.New("kg: invalid column positions")

	// ErrBadLabel is returned by WriteTSV for labels holding a separator.
	ErrBadLabel = errors.New("kg: label contains a tab or newline")
)
