package mux

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Result is the captured outcome of a non-interactive command.
// A non-zero ExitCode is not an error; only failing to run the command is.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes authority commands, locally or on a remote host.
type Runner interface {
	// Host returns the host nickname, empty for the local machine.
	Host() string
	LookPath(bin string) (string, error)
	Output(ctx context.Context, bin string, args ...string) (Result, error)
	// Interactive hands the terminal to the command and blocks until it
	// exits. It returns the child's exit code (-1 if it reported none).
	Interactive(bin string, args ...string) (int, error)
}

// LocalRunner runs commands on the local machine.
type LocalRunner struct{}

func (LocalRunner) Host() string { return "" }

func (LocalRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (LocalRunner) Output(ctx context.Context, bin string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	return result(cmd.Run(), &stdout, &stderr)
}

// Interactive runs the command as a foreground child with the process's
// standard streams. No timeout applies: the child lives as long as the
// user's session does.
func (LocalRunner) Interactive(bin string, args ...string) (int, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = filterTMUX(os.Environ())
	return exitCode(cmd.Run())
}

func result(err error, stdout, stderr *bytes.Buffer) (Result, error) {
	res := Result{Stdout: stdout.String(), Stderr: strings.TrimSpace(stderr.String())}
	if err == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, err
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// filterTMUX removes the TMUX env var so we can attach from within tmux.
func filterTMUX(env []string) []string {
	filtered := make([]string, 0, len(env))
	for _, e := range env {
		if !strings.HasPrefix(e, "TMUX=") {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
