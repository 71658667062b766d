package app

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a prefixed logger writing to w at level.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "toolbox",
		Level:  lvl,
	})
}
