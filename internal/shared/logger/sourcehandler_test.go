package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSourceLogger(buf *bytes.Buffer, levels ...slog.Level) *slog.Logger {
	base := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewSourceHandler(base, levels...))
}

func TestSourceHandler_AddsSourceOnlyForConfiguredLevels(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		level      slog.Level
		wantSource bool
	}{
		{name: "release info", mode: "release", level: slog.LevelInfo, wantSource: false},
		{name: "release warn", mode: "release", level: slog.LevelWarn, wantSource: true},
		{name: "release error", mode: "release", level: slog.LevelError, wantSource: true},
		{name: "debug info", mode: "debug", level: slog.LevelInfo, wantSource: true},
		{name: "debug debug", mode: "debug", level: slog.LevelDebug, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newTestSourceLogger(&buf, sourceLevelsFor(tt.mode)...)
			log.Log(context.Background(), tt.level, "ticket created")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_ShortensFilePath(t *testing.T) {
	var buf bytes.Buffer
	log := newTestSourceLogger(&buf, slog.LevelError)
	log.Error("boom")

	assert.Contains(t, buf.String(), "logger/sourcehandler_test.go")
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := newTestSourceLogger(&buf, slog.LevelError).
		With("ticket_number", "SUP-2024-000001").
		WithGroup("request")
	log.Info("reply added", "path", "/api/tickets")

	out := buf.String()
	assert.Contains(t, out, "ticket_number=SUP-2024-000001")
	assert.Contains(t, out, "request.path=/api/tickets")
	assert.NotContains(t, out, "source=")
}

func TestSourceHandler_RespectsWrappedLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
