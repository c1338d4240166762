package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
)

// sourceHandler attaches the caller location to records whose level is in
// levels. The wrapped handler must be configured with AddSource disabled.
type sourceHandler struct {
	next   slog.Handler
	levels map[slog.Level]struct{}
}

// NewSourceHandler wraps next so that only records at the given levels carry
// a source attribute. File paths are shortened to "dir/file.go".
func NewSourceHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return &sourceHandler{next: next, levels: set}
}

// sourceLevelsFor returns the levels that carry source for a server mode.
func sourceLevelsFor(mode string) []slog.Level {
	if mode == "debug" {
		return []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}
	return []slog.Level{slog.LevelWarn, slog.LevelError}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.levels[r.Level]; ok && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     shortPath(frame.File),
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), levels: h.levels}
}

func shortPath(file string) string {
	dir, base := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), base)
}
