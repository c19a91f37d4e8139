package mr

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if l := Logger(); l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default handler reports disabled at every level.
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerCapturesDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	// A failing export logs at debug level.
	c := New(2, 2)
	_ = c.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"))

	if !strings.Contains(buf.String(), "png export failed") {
		t.Errorf("expected export failure log, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("nil SetLogger did not restore the silent logger")
	}
}
