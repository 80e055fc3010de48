package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/modal/internal/config"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelDebug,
		Output: &buf,
		Prefix: "test",
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "test:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output", want)
		}
	}
}

func TestLogger_LogLevel_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelWarn,
		Output: &buf,
	})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "[WARN]") {
		t.Error("expected WARN in output")
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.Info("formatted %s %d", "test", 42)

	if !strings.Contains(buf.String(), "formatted test 42") {
		t.Errorf("expected formatted message, got: %s", buf.String())
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"b": 2, "a": 1}).WithComponent("session").Info("test")

	if !strings.Contains(buf.String(), "{a=1, b=2, component=session}") {
		t.Errorf("expected sorted fields, got: %s", buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("parent logger gained a field: %s", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Debug("test")
	NullLogger.WithField("k", "v").Error("test")
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "modal.log")

	logger, closer, err := NewLoggerFromConfig(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("NewLoggerFromConfig() error = %v", err)
	}
	logger.Debug("to file")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerFromConfig_Stderr(t *testing.T) {
	logger, closer, err := NewLoggerFromConfig(config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	if logger.Enabled(LogLevelInfo) {
		t.Error("info should be filtered at warn level")
	}
}
