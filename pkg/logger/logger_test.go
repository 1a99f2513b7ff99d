package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", "")

	log.Info("hidden")
	log.Warn("shown", "component", "test")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shown", line["msg"])
	require.Equal(t, "astrologer", line["service"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "debug", "TEXT")

	log.Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "service=astrologer")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelError, parseLevel("ERROR"))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
