// Package logger provides structured logging for aurcheck.
package logger

import (
	"io"
	"log/slog"
)

// New returns a slog.Logger writing key=value lines to w.
func New(w io.Writer, level Level) *slog.Logger {
	return slog.New(NewWriterHandler(w, level))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
