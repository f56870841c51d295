// Package logging configures leveled console diagnostics.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	Prefix          string
	ReportTimestamp bool
}

// DefaultOptions returns the default console logger options. Diagnostics
// stay quiet unless raised via config or the --verbose flag.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		Prefix:          "taskline",
		ReportTimestamp: false,
	}
}

// New creates a console logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
	})
}

// ParseLevel maps a config string to a log level. Unknown or empty values
// fall back to the default warn level.
func ParseLevel(value string) log.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
