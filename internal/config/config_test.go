package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", cfg.DisplayTimeZone)
	assert.True(t, cfg.Color)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/test.db\ndisplay_timezone: Europe/Berlin\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "Europe/Berlin", cfg.DisplayTimeZone)
	assert.False(t, cfg.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0o644))
	t.Setenv("FACILOPS_DB", "/tmp/env.db")
	t.Setenv("FACILOPS_TZ", "UTC")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "UTC", cfg.DisplayTimeZone)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", cfg.DisplayTimeZone)
}

func TestConfig_Location_FallsBackToUTC(t *testing.T) {
	cfg := Config{DisplayTimeZone: "Not/AZone"}
	assert.Equal(t, "UTC", cfg.Location().String())
}
