package taipower

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger used by the command line programs.
// Diagnostics go to w (normally stderr) so stdout carries only results.
func NewLogger(w io.Writer, prog string, debug bool) *log.Logger {
	var logger = log.NewWithOptions(w, log.Options{
		Prefix: prog,
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
