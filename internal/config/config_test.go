package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := setHome(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, defaultLogPath, cfg.LogPath)
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	setHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := setHome(t)

	path := writeConfig(t, `
log_path = "  ~/poc/logs.txt  "

[[endpoints]]
name = " Grafana "
url = " http://localhost:3000 "

[[endpoints]]
name = "broken"
url = "   "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "poc", "logs.txt"), cfg.LogPath)
	assert.Equal(t, []Endpoint{{Name: "Grafana", URL: "http://localhost:3000"}}, cfg.Endpoints)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	setHome(t)

	path := writeConfig(t, `
log_path = "   "
endpoints = []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultLogPath, cfg.LogPath)
	assert.Equal(t, DefaultEndpoints(), cfg.Endpoints)
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `log_path = [`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := setHome(t)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
}

func TestDefaultEndpoints(t *testing.T) {
	eps := DefaultEndpoints()
	require.Len(t, eps, 2)
	assert.Equal(t, "Authentik", eps[0].Name)
	assert.True(t, strings.HasSuffix(eps[1].URL, ":8080"))
}
