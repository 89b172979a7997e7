package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/logging"
)

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &logging.Config{Format: logging.FormatJSON, Level: logging.LevelWarn}
	require.NoError(t, cfg.Finalize(nil))

	logger := logging.NewWriter(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "table", "products")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "products", entry["table"])
	assert.Equal(t, "antique-feed", entry["service"])
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "WARNING")
	t.Setenv("TEST_LOG_FORMAT", "JSON")

	cfg := &logging.Config{}
	require.NoError(t, cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}))
	assert.Equal(t, logging.LevelWarn, cfg.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Format)

	bad := &logging.Config{Level: "loud"}
	assert.Error(t, bad.Finalize(nil))

	bad = &logging.Config{Format: "xml"}
	assert.Error(t, bad.Finalize(nil))
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := map[logging.Level]slog.Level{
		logging.LevelDebug: slog.LevelDebug,
		logging.LevelInfo:  slog.LevelInfo,
		logging.LevelWarn:  slog.LevelWarn,
		logging.LevelError: slog.LevelError,
		"unknown":          slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, level.ToSlogLevel(), string(level))
	}
}
