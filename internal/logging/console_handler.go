package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const consoleTimestampLayout = "2006-01-02 15:04:05"

type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	return &consoleHandler{writer: w, level: lvl}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var component string
	fields := make([]slog.Attr, 0, record.NumAttrs()+len(h.attrs))
	appendAttr := func(attr slog.Attr) {
		if attr.Key == FieldComponent && component == "" {
			component = attr.Value.String()
			return
		}
		if attr.Equal(slog.Attr{}) {
			return
		}
		fields = append(fields, attr)
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var buf bytes.Buffer
	buf.Grow(128 + len(fields)*24)
	buf.WriteString(timestamp.In(time.Local).Format(consoleTimestampLayout))
	buf.WriteByte(' ')
	buf.WriteString(levelTag(record.Level))
	if component != "" {
		buf.WriteString(" [")
		buf.WriteString(component)
		buf.WriteByte(']')
	}
	buf.WriteByte(' ')
	buf.WriteString(message)
	for _, attr := range fields {
		buf.WriteByte(' ')
		writeQualifiedKey(&buf, h.groups, attr.Key)
		buf.WriteByte('=')
		buf.WriteString(attr.Value.String())
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
		groups: h.groups,
	}
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
	}
	return clone
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func writeQualifiedKey(buf *bytes.Buffer, groups []string, key string) {
	for _, group := range groups {
		buf.WriteString(group)
		buf.WriteByte('.')
	}
	buf.WriteString(key)
}
