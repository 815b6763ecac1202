package shapes

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record, Enabled reports false so nothing is formatted
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger of the dataset generators. By default
// nothing is logged, nil restores that.
//
// Levels used:
//   - [slog.LevelDebug]: progress markers while generating
//   - [slog.LevelInfo]: finished datasets and shards
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
