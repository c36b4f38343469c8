package store

import (
	"context"
	"log/slog"

	"github.com/ringlog/ringlog/core"
)

// SlogHandler adapts a Store to the log/slog.Handler interface, so a
// host application can route its slog output into the bounded
// history without touching call sites.
type SlogHandler struct {
	store *Store
	min   core.Priority
	attrs []string
	group string
}

// NewSlogHandler creates a slog.Handler committing to the given
// store. Records below min are not committed at all; the store's own
// verbosity still governs console output for the rest.
func NewSlogHandler(s *Store, min core.Priority) *SlogHandler {
	return &SlogHandler{store: s, min: min}
}

// Enabled reports whether the handler handles records at the given level
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogPriority(level) >= h.min
}

// Handle commits the slog record through the store's regular commit
// path. Attrs are rendered as trailing key=value pairs.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	parts := make([]any, 0, 1+len(h.attrs)+record.NumAttrs())
	parts = append(parts, record.Message)
	for _, a := range h.attrs {
		parts = append(parts, " ", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		parts = append(parts, " ", h.renderAttr(a))
		return true
	})

	h.store.Record(slogPriority(record.Level), parts...)
	return nil
}

// WithAttrs returns a new handler with additional pre-rendered attrs
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(rendered, h.attrs)
	for _, a := range attrs {
		rendered = append(rendered, h.renderAttr(a))
	}
	return &SlogHandler{store: h.store, min: h.min, attrs: rendered, group: h.group}
}

// WithGroup returns a new handler with the given group prefix
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	attrs := make([]string, len(h.attrs))
	copy(attrs, h.attrs)
	return &SlogHandler{store: h.store, min: h.min, attrs: attrs, group: group}
}

func (h *SlogHandler) renderAttr(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + a.Key
	}
	return key + "=" + a.Value.Resolve().String()
}

// slogPriority maps slog levels onto the four real priorities
func slogPriority(level slog.Level) core.Priority {
	switch {
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warning
	case level >= slog.LevelInfo:
		return core.Message
	default:
		return core.Debugging
	}
}
