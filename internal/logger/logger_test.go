package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if log := New(tt.level); log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-threshold messages logged: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn message") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info(context.Background(), "processed %d chapters in %s", 5, "1.2s")

	if !strings.Contains(buf.String(), "processed 5 chapters in 1.2s") {
		t.Errorf("printf args not applied: %q", buf.String())
	}
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("nonsense", &buf)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug should be filtered at default level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info should pass at default level: %q", out)
	}
}
