package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 25*time.Millisecond, cfg.Settings.TypingDelay)
	assert.True(t, cfg.Settings.Color)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `[Settings]
TypingDelay = 40ms
Color = false

[Log]
File = awaken.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Millisecond, cfg.Settings.TypingDelay)
	assert.False(t, cfg.Settings.Color)
	assert.False(t, cfg.Settings.Plain)
	assert.Equal(t, "awaken.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level, "keys absent from the file keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[Settings]\nTypingDelay = 40ms\n")
	t.Setenv("AWAKEN_TYPING_DELAY", "5ms")
	t.Setenv("AWAKEN_PLAIN", "true")
	t.Setenv("AWAKEN_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, cfg.Settings.TypingDelay)
	assert.True(t, cfg.Settings.Plain)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("AWAKEN_TYPING_DELAY", "soon")
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_BadFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[Settings]\nColor = perhaps\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TypingDelay = 25ms")
	assert.Contains(t, string(data), "[Log]")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	want := Default()
	want.Settings.TypingDelay = 60 * time.Millisecond
	want.Settings.Plain = true
	want.Log.File = "/tmp/awaken.log"
	want.Log.Level = "warn"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
