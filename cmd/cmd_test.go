package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon/muxpick/internal/config"
	"github.com/simon/muxpick/internal/mux"
	"github.com/simon/muxpick/internal/ui"
)

func withConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	old := flags.config
	flags.config = path
	t.Cleanup(func() { flags.config = old })
}

func TestParseHostName(t *testing.T) {
	withConfig(t, "hosts:\n  devbox:\n    host: dev.example.com\n")

	tests := []struct {
		input string
		host  string
		name  string
	}{
		{"alpha", "", "alpha"},
		{"devbox:alpha", "devbox", "alpha"},
		{"other:alpha", "", "other:alpha"},
		{"devbox:", "devbox", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			host, name := parseHostName(tt.input)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestResolveRunner(t *testing.T) {
	cfg := &config.Config{Hosts: map[string]config.HostConfig{
		"devbox": {Host: "dev.example.com", User: "simon"},
	}}

	local, err := resolveRunner(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, mux.LocalRunner{}, local)

	remote, err := resolveRunner(cfg, "devbox")
	require.NoError(t, err)
	assert.Equal(t, &mux.SSHRunner{Nickname: "devbox", Addr: "dev.example.com", User: "simon"}, remote)

	_, err = resolveRunner(cfg, "nope")
	assert.ErrorContains(t, err, `unknown host "nope"`)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "muxpick 1.2.3 (abc123)\n", out)
}

func TestUnknownFlagFails(t *testing.T) {
	_, err := execute(t, "--bogus")
	assert.ErrorContains(t, err, "unknown flag: --bogus")
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	old := ui.Stderr
	ui.Stderr = &buf
	t.Cleanup(func() { ui.Stderr = old })

	reportError(&mux.MissingError{Authority: "tmux", Hint: "brew install tmux"})
	assert.Equal(t, "✗ tmux not found on PATH\n  install: brew install tmux\n", buf.String())
}
