package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/helios/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"loud", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelWarn.String() != "WARN" || LogLevel(42).String() != "UNKNOWN" {
		t.Error("unexpected level names")
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "helios"})
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.WithComponent("saver").WithField("job", 7).Info("saved %s", "a.txt")

	want := "2026-01-02T03:04:05.000 [INFO] helios: saved a.txt {component=saver, job=7}\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("filtered levels written: %q", out)
	}
	if !strings.Contains(out, "[WARN] helios: w") || !strings.Contains(out, "[ERROR] helios: e") {
		t.Errorf("missing levels: %q", out)
	}

	buf.Reset()
	l.SetLevel(LogLevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLevel did not lower the threshold")
	}
}

func TestLoggerFieldsDoNotLeak(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	_ = l.WithField("a", 1)
	l.WithFields(map[string]any{"b": 2, "c": 3}).Info("x")
	l.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasSuffix(lines[0], "x {b=2, c=3}") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.Contains(lines[1], "{") {
		t.Errorf("parent logger gained fields: %q", lines[1])
	}
}

func TestLoggerDisable(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	l.Disable()
	l.Error("gone")
	NullLogger.Error("gone too")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestNewFileLoggerWithoutFile(t *testing.T) {
	l, closer := NewFileLogger(config.LoggingConfig{Level: "error"})
	if l.Level() != LogLevelError {
		t.Errorf("level = %v", l.Level())
	}
	l.Error("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewFileLoggerRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "helios.log")
	l, closer := NewFileLogger(config.LoggingConfig{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1})
	l.Debug("hello %d", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] helios: hello 42") {
		t.Errorf("log file = %q", data)
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	l, buf := newBufferLogger(LogLevelInfo)
	SetLogger(l)
	GetLogger().Info("global")
	if !strings.Contains(buf.String(), "global") {
		t.Error("SetLogger not used by GetLogger")
	}
}
