package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Logger{Level: "verbose"}.SlogLevel())
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "info", Format: "JSON"}.NewLogger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", slog.String("k", "v"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}
