package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", slog.LevelInfo)

	logger.Warn("skipping malformed line", "line", 3)

	out := buf.String()
	if !strings.Contains(out, "skipping malformed line") {
		t.Errorf("expected message in text output, got: %s", out)
	}
	if !strings.Contains(out, "line=3") {
		t.Errorf("expected line=3 attribute, got: %s", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", slog.LevelInfo)

	logger.Info("parse complete", "records", 8)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "parse complete" {
		t.Errorf("expected msg 'parse complete', got %q", m["msg"])
	}
	if m["records"] != float64(8) {
		t.Errorf("expected records=8, got %v", m["records"])
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", slog.LevelWarn)

	logger.Debug("noise")
	logger.Info("still noise")

	if buf.Len() != 0 {
		t.Fatalf("expected below-level records suppressed, got: %s", buf.String())
	}

	logger.Warn("signal")
	if !strings.Contains(buf.String(), "signal") {
		t.Fatalf("expected warn record, got: %s", buf.String())
	}
}
