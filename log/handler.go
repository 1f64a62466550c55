// Package log provides structured logging (slog) routed through the host's
// debug console callback, so plugin diagnostics land where the host's own
// do.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/valadaptive/after-effects/suite"
)

// ConsoleHandler implements slog.Handler on top of the host's utility
// suite. Records are formatted as a single console line:
//
//	LEVEL message key=value key=value
type ConsoleHandler struct {
	util  *suite.UtilitySuite
	opts  handlerConfig
	attrs []slog.Attr
	group string
}

// HandlerOption configures the ConsoleHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum level to forward to the host console.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource includes source location (file:line) in each line.
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a handler that writes through the given utility suite.
// A nil suite or missing console callback yields a handler that discards
// everything, so logging stays safe before suites are acquired.
func NewHandler(util *suite.UtilitySuite, opts ...HandlerOption) *ConsoleHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ConsoleHandler{util: util, opts: cfg}
}

// New returns a slog.Logger backed by the host console.
func New(util *suite.UtilitySuite, opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(util, opts...))
}

// Enabled reports whether records at this level reach the console.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.util == nil || h.util.WriteConsole == nil {
		return false
	}
	return level >= h.opts.level
}

// Handle formats the record and hands it to the host.
func (h *ConsoleHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Level.String())
	b.WriteByte(' ')
	b.WriteString(rec.Message)
	for _, a := range h.attrs {
		// Stored attrs were qualified when added.
		writeAttr(&b, "", a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	if h.opts.addSource && rec.PC != 0 {
		src := rec.Source()
		if src != nil {
			fmt.Fprintf(&b, " source=%s:%d", src.File, src.Line)
		}
	}
	h.util.WriteConsole(b.String())
	return nil
}

// WithAttrs returns a handler that prepends the given attributes. Keys are
// qualified with the group open at the time of the call, so later groups do
// not retroactively rename them.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a handler that qualifies attribute keys with the group
// name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	next := *h
	if name != "" {
		if next.group != "" {
			next.group += "."
		}
		next.group += name
	}
	return &next
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
