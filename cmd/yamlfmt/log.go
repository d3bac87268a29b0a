package main

import (
	"io"
	"log/slog"
	"os"
)

var theLog = newLogger(os.Stderr, slog.LevelInfo)

// newLogger writes text records without timestamps.  The level is shown
// only for records above INFO, so warnings stand out from progress lines.
func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) != 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= slog.LevelInfo {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
