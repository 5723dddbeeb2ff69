// Package cli implements the sppbench command-line interface: a solve
// command for one-off instances and a bench command driving the compare
// harness against a TOML config, both logging through charmbracelet/log
// attached to the command's context.
//
// Grounded on matzehuels-stacktower/internal/cli/root.go and log.go: a
// cobra root command with a persistent --verbose flag toggling log
// level, a context-carried logger, SilenceUsage, and ExecuteContext
// driven by a cancelable context built by the caller.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds a logger writing to w at the given level, with
// timestamps enabled.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a distinct type for this package's context keys, so they
// can never collide with another package's.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, or log.Default() if
// none was attached (so every command has a usable logger regardless of
// how it was invoked).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
