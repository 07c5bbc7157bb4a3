package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

const (
	timeFormat    = "2006-01-02T15:04:05-07:00"
	lineBufferCap = 256
)

// LineHandler writes one line per record:
// "2006-01-02T15:04:05-07:00 LEVEL msg key=value".
//
// Attributes passed to WithAttrs are rendered once, with the groups open at
// that point, and reused for every record.
type LineHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	prefix string
	attrs  []byte
}

// NewWriterHandler creates a handler writing to w. Handlers derived through
// WithAttrs and WithGroup share the same lock.
func NewWriterHandler(w io.Writer, level Level) *LineHandler {
	return &LineHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level.ToSlogLevel(),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats r and writes it as a single line.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, lineBufferCap)

	if !r.Time.IsZero() {
		buf = r.Time.Local().AppendFormat(buf, timeFormat)
		buf = append(buf, ' ')
	}

	buf = append(buf, r.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)

		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf)

	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	clone := *h
	clone.attrs = append([]byte(nil), h.attrs...)

	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, a)
	}

	return &clone
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range group {
			buf = appendAttr(buf, prefix, ga)
		}

		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		return appendString(buf, v.String())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().Local().AppendFormat(buf, timeFormat)
	default:
		return appendString(buf, v.String())
	}
}

func appendString(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"=") {
		return strconv.AppendQuote(buf, s)
	}

	return append(buf, s...)
}

var _ slog.Handler = (*LineHandler)(nil)
