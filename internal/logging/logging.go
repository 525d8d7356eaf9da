// Package logging builds the slog loggers used by the command-line tools.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Records carry no timestamp; the
// tools are short-lived and write to a terminal. Debug records are kept only
// when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
