// Package logging routes diagnostics to a leveled logger. Per spec.md
// §6, the log stream defaults to stdout (matching the legacy prototype,
// which printf'd everything to one stream) and -2 redirects it to
// stderr so stdout carries only the two result sections.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the leveled diagnostic logger used throughout nanptap.
type Logger = log.Logger

// New builds a logger at the level implied by verbose/debug. toStderr
// corresponds to the -2 flag: when set, diagnostics move to stderr;
// otherwise they share stdout with the symbol stream and extracted
// numbers.
func New(verbose, debug, toStderr bool) *log.Logger {
	var w io.Writer = os.Stdout
	if toStderr {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})

	switch {
	case debug:
		logger.SetLevel(log.DebugLevel)
	case verbose:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	return logger
}
