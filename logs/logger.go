// SPDX-License-Identifier: MIT

// Package logs owns the process-wide logrus logger.
package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared logger. It is usable before Init (info level,
// stderr) so library code and tests never see a nil logger.
var Logger = newLogger(os.Stderr, logrus.InfoLevel)

func newLogger(w io.Writer, lvl logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return l
}

// Init configures Logger. level is a logrus level name ("debug", "info",
// ...). When file is non-empty, output goes to both the file and stderr.
// The returned closer releases the file, if any.
func Init(level, file string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)

	if file == "" {
		Logger.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(io.MultiWriter(f, os.Stderr))

	return f, nil
}
