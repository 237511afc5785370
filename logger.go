package hexdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so disabled calls
// never format their arguments.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger installs l as the logger for hexdraw and the asset package.
// Nil restores the default, which discards everything.
//
// hexdraw logs only at [slog.LevelDebug]: renderer creation, flush
// summaries (including the dropped record count) and asset loads.
// Reacting to dropped records is up to the caller, see Renderer.Dropped.
//
// SetLogger may be called while other goroutines log.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the installed logger. It is never nil.
func Logger() *slog.Logger {
	return logger.Load()
}
