// Package logger builds the leveled console logger used by relex.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Debug enables the debug level.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "relex",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
