package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	ctx := context.Background()
	for _, level := range []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !l.Enabled(ctx, level) {
			t.Errorf("expected level %v to be enabled", level)
		}
	}
	if l.Enabled(ctx, slog.LevelDebug) {
		t.Error("did not expect debug level to be enabled")
	}
}

func TestNewLoggerUsesJSONHandler(t *testing.T) {
	l := New()
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}
