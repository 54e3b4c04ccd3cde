package core

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger("scene").Enabled(context.Background(), slog.LevelError) {
		t.Error("Default logger should be disabled")
	}

	var sb strings.Builder
	SetLogger(slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger("scene").Debug("rejected filler candidate", "a", 2, "b", 0)
	out := sb.String()
	for _, want := range []string{"component=scene", "rejected filler candidate", "a=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got %q", want, out)
		}
	}

	SetLogger(nil)
	sb.Reset()
	Logger("scene").Error("dropped")
	if sb.Len() != 0 {
		t.Errorf("Expected no output after SetLogger(nil), got %q", sb.String())
	}
	if Logger("scene") == nil {
		t.Error("Logger should never return nil")
	}
}
