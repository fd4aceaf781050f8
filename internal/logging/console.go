// Package logging provides console diagnostics with charmbracelet/log.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	// Level is a level name: debug, info, warn, or error. Unknown names
	// fall back to warn.
	Level           string
	ReportTimestamp bool
}

// New creates a leveled console logger writing human-readable output to
// stderr, keeping stdout free for command results.
func New(opts Options) *log.Logger {
	return NewWithWriter(os.Stderr, opts)
}

// NewWithWriter creates a console logger writing to w. Useful for tests.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          "tasker",
	})
}

// ParseLevel maps a level name to a log.Level, defaulting to warn.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
