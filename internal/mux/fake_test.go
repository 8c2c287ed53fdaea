package mux

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type call struct {
	Bin  string
	Args []string
}

// fakeRunner returns scripted results keyed by "bin arg arg...".
type fakeRunner struct {
	host        string
	paths       map[string]bool
	outputs     map[string]Result
	errs        map[string]error
	exitCode    int
	interactErr error
	calls       []call
}

func key(bin string, args []string) string {
	return strings.Join(append([]string{bin}, args...), " ")
}

func (f *fakeRunner) Host() string { return f.host }

func (f *fakeRunner) LookPath(bin string) (string, error) {
	if f.paths[bin] {
		return "/usr/bin/" + bin, nil
	}
	return "", fmt.Errorf("%s: %w", bin, exec.ErrNotFound)
}

func (f *fakeRunner) Output(_ context.Context, bin string, args ...string) (Result, error) {
	f.calls = append(f.calls, call{Bin: bin, Args: args})
	k := key(bin, args)
	if err, ok := f.errs[k]; ok {
		return Result{ExitCode: -1}, err
	}
	return f.outputs[k], nil
}

func (f *fakeRunner) Interactive(bin string, args ...string) (int, error) {
	f.calls = append(f.calls, call{Bin: bin, Args: args})
	return f.exitCode, f.interactErr
}
