package debug

import (
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/signadot/yamlfmt/ir"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// Logger returns the logger debug output is written to.
func Logger() *slog.Logger {
	return logger
}

// Logf logs a formatted debug message.  *ir.Node and *ir.Out arguments
// are rendered with Repr, maps and slices as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = x.Repr()
		case *ir.Out:
			args[i] = x.Repr()
		}
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
