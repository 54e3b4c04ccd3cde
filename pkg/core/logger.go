package core

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger installs the logger used for scene composition diagnostics.
// Composition is silent until a logger is installed; nil silences it again.
// The scene package logs rejected filler candidates and per-scene counts at
// Debug, and drivers are expected to report summaries at Info.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the installed logger tagged with the given component name,
// e.g. Logger("scene").
func Logger(component string) *slog.Logger {
	return logger.Load().With("component", component)
}
