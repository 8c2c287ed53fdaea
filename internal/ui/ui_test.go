package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })
	return &out, &errOut
}

func TestStatusLines(t *testing.T) {
	out, errOut := capture(t)

	Successf("killed %d sessions", 2)
	Infof("attaching to %q", "alpha")
	Errorf("listing failed: %s", "boom")

	assert.Equal(t, "✓ killed 2 sessions\n→ attaching to \"alpha\"\n", out.String())
	assert.Equal(t, "✗ listing failed: boom\n", errOut.String())
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Key", "Name"})
	table.Append([]string{"a", "alpha"})
	table.Append([]string{"b", "beta"})
	table.Render()

	assert.Contains(t, buf.String(), "KEY")
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "beta")
}

func TestWithSpinnerReturnsError(t *testing.T) {
	capture(t)
	boom := errors.New("boom")

	assert.ErrorIs(t, WithSpinner("working", func() error { return boom }), boom)
	assert.NoError(t, WithSpinner("working", func() error { return nil }))
}
