package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"membership/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "membership"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("order_id", "o-1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "membership", entry["service"])
	assert.Equal(t, "develop", entry["env"])
	assert.Equal(t, "o-1", entry["order_id"])
}

func TestNewLogger_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.NotContains(t, buf.String(), "service=")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
