package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestRedaction(t *testing.T) {
	l, logs := observed()

	l.Info("configured",
		"api_key", "sk-123",
		"refresh_token", "abc",
		"input_tokens", 42,
		"provider", "anthropic",
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["api_key"])
	assert.Equal(t, "[REDACTED]", fields["refresh_token"])
	assert.EqualValues(t, 42, fields["input_tokens"])
	assert.Equal(t, "anthropic", fields["provider"])
}

func TestWith(t *testing.T) {
	l, logs := observed()

	l.With("component", "session").Warn("save failed", "err", "disk full")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "session", entry.ContextMap()["component"])
}

func TestOddKeyValues(t *testing.T) {
	l, logs := observed()
	l.Debug("dangling", "only-key")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "(MISSING)", logs.All()[0].ContextMap()["only-key"])
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickcode.log")

	l, err := New(Options{Level: "debug", Path: path, JSON: true})
	require.NoError(t, err)
	l.Info("hello", "n", 1)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
