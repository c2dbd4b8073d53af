// Package logging wires log/slog with context-carried attributes and
// optional rotating file output.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger builds a *slog.Logger writing to w at the given level. When
// jsonOut is set the records are emitted as JSON, otherwise logfmt-style
// text. Attributes appended to the context via AppendCtx are included on
// every record.
func Logger(w io.Writer, jsonOut bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if jsonOut {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(ctxHandler{Handler: h})
}

// File returns a size-rotated log writer for path.
func File(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

type ctxAttrsKey struct{}

// AppendCtx returns a context carrying attr in addition to any attributes
// already appended. Handlers built by Logger attach these to every record
// logged with that context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	attrs, _ := parent.Value(ctxAttrsKey{}).([]slog.Attr)
	// copy so sibling contexts don't share a backing array
	next := make([]slog.Attr, len(attrs), len(attrs)+1)
	copy(next, attrs)
	next = append(next, attr)
	return context.WithValue(parent, ctxAttrsKey{}, next)
}

// ctxHandler injects context-appended attributes into each record.
type ctxHandler struct {
	slog.Handler
}

func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxAttrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ctxHandler) WithGroup(name string) slog.Handler {
	return ctxHandler{Handler: h.Handler.WithGroup(name)}
}
