package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo}, // default
		{"", LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(99).String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug, FormatJSON)

	l.Info("draft assembled", "file", "people.yaml", "bytes", 120)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "draft assembled", entry["msg"])
	assert.Equal(t, "people.yaml", entry["file"])
	assert.Equal(t, float64(120), entry["bytes"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn, FormatJSON)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l.Error("also shown")
	assert.Contains(t, buf.String(), "also shown")
}

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo, FormatText)

	l.Info("scan stopped", "position", 16)

	out := buf.String()
	assert.Contains(t, out, "scan stopped")
	assert.Contains(t, out, "position=16")
	assert.NotContains(t, out, "\x1b[", "no color codes for non-terminal writers")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, LevelInfo, FormatJSON)

	l := base.WithFields("file", "a.yaml")
	l.Info("loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "a.yaml", entry["file"])

	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "a.yaml", "parent logger must not inherit fields")
}

func TestNewWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acitool.log")

	l := New(Config{Level: "info", Format: "json", Output: path})
	l.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Same(t, l, l.WithFields("k", "v"))
}
