package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		inp string
		res slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.inp), v.inp)
	}
}

func TestHandlerFormats(t *testing.T) {
	tests := []struct {
		format string
		check  func(*testing.T, string)
	}{
		{"json", func(t *testing.T, s string) {
			var res map[string]any
			require.NoError(t, json.Unmarshal([]byte(s), &res))
			assert.Equal(t, "hello", res["msg"])
			assert.Equal(t, "S1", res["sample"])
		}},
		{"text", func(t *testing.T, s string) {
			assert.Contains(t, s, "msg=hello")
			assert.Contains(t, s, "sample=S1")
		}},
		{"tint", func(t *testing.T, s string) {
			assert.Contains(t, s, "hello")
			assert.Contains(t, s, "sample=S1")
		}},
	}

	for _, v := range tests {
		t.Run(v.format, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.LogConfig{Format: v.format, Level: "info"}
			log := slog.New(newHandler(&buf, cfg, false))
			log.Info("hello", "sample", "S1")
			log.Debug("hidden")
			assert.NotContains(t, buf.String(), "hidden")
			v.check(t, buf.String())
		})
	}
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first")
	require.NoError(t, Init(dir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	require.NoError(t, Init(dir, cfg, false))
	data, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, data, "fresh log file")
}

func TestInitFileError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "missing"), cfg, false)
	assert.Error(t, err)
}
