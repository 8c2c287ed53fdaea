package mux

import (
	"fmt"
	"strings"
)

// Names lists the supported authorities in detection order.
var Names = []string{"tmux", "shpool", "zmx"}

// FromName creates an Authority by name. An empty name or "auto" detects
// the first authority available through runner.
func FromName(name string, runner Runner, opts ...Option) (Authority, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Detect(runner, opts...)
	case "tmux":
		return NewTmux(runner, opts...), nil
	case "shpool":
		return NewShpool(runner, opts...), nil
	case "zmx":
		return NewZmx(runner, opts...), nil
	default:
		return nil, fmt.Errorf("unknown authority %q (supported: %s)", name, strings.Join(Names, ", "))
	}
}

// Detect returns the first authority whose binary is on the runner's path.
// Binary overrides are not applied during detection.
func Detect(runner Runner, opts ...Option) (Authority, error) {
	if runner == nil {
		runner = LocalRunner{}
	}
	var lastErr error
	for _, name := range Names {
		if _, err := runner.LookPath(name); err != nil {
			lastErr = err
			continue
		}
		return FromName(name, runner, opts...)
	}
	return nil, &MissingError{
		Authority: strings.Join(Names, ", "),
		Host:      runner.Host(),
		Hint:      "install one of them, e.g. " + InstallHint("tmux", goos),
		Err:       lastErr,
	}
}
