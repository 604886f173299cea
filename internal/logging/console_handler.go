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

// consoleHandler writes one header line per record followed by indented
// fields:
//
//	2026-01-02 15:04:05 WARN [detector] – skipping unreadable file
//	    - path: data/a.txt
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	component string
	fields    []field
	prefix    string
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	component := h.component
	fields := append([]field(nil), h.fields...)
	record.Attrs(func(attr slog.Attr) bool {
		fields = h.collect(fields, &component, h.prefix, attr)
		return true
	})

	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}

	var buf bytes.Buffer
	buf.WriteString(formatTimestamp(ts))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	if component != "" {
		buf.WriteString(" [" + component + "]")
	}
	buf.WriteString(" – " + msg + "\n")
	for _, f := range fields {
		// Run IDs matter in the JSON log file, not on a terminal.
		if f.key == FieldRunID && record.Level >= slog.LevelInfo {
			continue
		}
		buf.WriteString("    - " + f.key + ": " + formatValue(f.value) + "\n")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = append([]field(nil), h.fields...)
	for _, attr := range attrs {
		clone.fields = h.collect(clone.fields, &clone.component, h.prefix, attr)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// collect flattens attr into dst under prefix. The component attribute moves
// to the header instead of the field list.
func (h *consoleHandler) collect(dst []field, component *string, prefix string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = prefix + attr.Key + "."
		}
		for _, child := range attr.Value.Group() {
			dst = h.collect(dst, component, next, child)
		}
		return dst
	}
	if prefix == "" && attr.Key == FieldComponent {
		*component = attrString(attr.Value)
		return dst
	}
	return append(dst, field{key: prefix + attr.Key, value: attr.Value})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
