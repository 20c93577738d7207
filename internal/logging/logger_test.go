package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger = NewComponentLogger(logger, "converter")
	logger.Info("document written", String("output", "Brand-ItemX.irplus"), Int("buttons", 3))

	line := buf.String()
	for _, want := range []string{"INFO", "[converter]", "document written", "output=Brand-ItemX.irplus", "buttons=3"} {
		if !strings.Contains(line, want) {
			t.Fatalf("console line missing %q: %s", want, line)
		}
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("suppressed")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "suppressed") {
		t.Fatal("info line should have been filtered")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatal("warn line missing")
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar, false))

	logger.Info("queued", String("source", "capture.txt"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if payload["msg"] != "queued" {
		t.Fatalf("msg = %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("level = %v", payload["level"])
	}
	if payload["source"] != "capture.txt" {
		t.Fatalf("source = %v", payload["source"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopIsSilent(t *testing.T) {
	logger := NewNop()
	logger.Error("should vanish", Error(nil))
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
