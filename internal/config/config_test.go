package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MUXPICK_CONFIG", "")
	t.Setenv("MUXPICK_AUTHORITY", "")
	t.Setenv("MUXPICK_BINARY", "")
	t.Setenv("MUXPICK_HOST", "")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Authority)
	assert.Equal(t, defaultPlaceholder, cfg.Placeholder)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
authority: shpool
binary: /opt/bin/shpool
placeholder: pick one
hosts:
  devbox:
    host: dev.example.com
    user: simon
    ssh_key: ~/.ssh/id_dev
  bare: {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shpool", cfg.Authority)
	assert.Equal(t, "/opt/bin/shpool", cfg.Binary)
	assert.Equal(t, "pick one", cfg.Placeholder)
	assert.Equal(t, path, cfg.ConfigFile)

	h, err := cfg.LookupHost("devbox")
	require.NoError(t, err)
	assert.Equal(t, "dev.example.com", h.Host)
	assert.Equal(t, "simon", h.User)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".ssh", "id_dev"), h.SSHKey)

	bare, err := cfg.LookupHost("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", bare.Host)

	_, err = cfg.LookupHost("nope")
	assert.ErrorContains(t, err, `unknown host "nope"`)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "authority: shpool\n")
	t.Setenv("MUXPICK_AUTHORITY", "zmx")
	t.Setenv("MUXPICK_HOST", "devbox")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zmx", cfg.Authority)
	assert.Equal(t, "devbox", cfg.Host)
}

func TestConfigFromEnvPath(t *testing.T) {
	isolate(t)
	t.Setenv("MUXPICK_CONFIG", writeConfig(t, "authority: tmux\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tmux", cfg.Authority)
}

func TestExplicitMissingFileIsError(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestInvalidYAML(t *testing.T) {
	isolate(t)
	_, err := Load(writeConfig(t, "authority: [unclosed\n"))
	assert.ErrorContains(t, err, "parsing config file")
}
