package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file into dir and returns its path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
version: 1
workspace: Acme Inc
user: Riley
api:
  url: https://dash.acme.example
  timeout: 5s
refresh: 15s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "Acme Inc", cfg.Workspace)
	assert.Equal(t, "Riley", cfg.User)
	assert.Equal(t, "https://dash.acme.example", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Refresh)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
version: 1
api:
  url: http://localhost:9999
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Unspecified fields keep defaults
	assert.Equal(t, 30*time.Second, cfg.Refresh)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "{{{not yaml")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
version: 1
api:
  url: ""
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.url")
}

func TestFind_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "version: 1")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, "version: 1")
	t.Chdir(dir)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), found)
}

func TestFind_NothingFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadOrDefault_NoConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)

	// Falls back to defaults
	assert.Equal(t, Default().API.URL, cfg.API.URL)
	assert.Equal(t, Default().Refresh, cfg.Refresh)
}

func TestLoadOrDefault_PrefersLocalConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ConfigFileName, `
version: 1
workspace: Local
api:
  url: http://local.example
`)
	t.Chdir(dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "Local", cfg.Workspace)
	assert.Equal(t, "http://local.example", cfg.API.URL)
}
