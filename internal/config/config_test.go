package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Database.Path)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestUIConfigLocation(t *testing.T) {
	loc, err := UIConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)

	loc, err = UIConfig{Timezone: "America/New_York"}.Location()
	require.NoError(t, err)
	require.Equal(t, "America/New_York", loc.String())

	_, err = UIConfig{Timezone: "Mars/Olympus"}.Location()
	require.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npath = \"/tmp/other.db\"\n\n[log]\nlevel = \"debug\"\n"), 0o644))
	t.Setenv("BANKINTAKE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BANKINTAKE_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("BANKINTAKE_UI_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.Database.Path)
	require.Equal(t, "UTC", cfg.UI.Timezone)
}
