package mux

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// sshFailure is the exit status ssh itself uses for connection errors.
const sshFailure = 255

// SSHRunner runs authority commands on a remote host over SSH.
type SSHRunner struct {
	Nickname string
	Addr     string
	User     string
	SSHKey   string
}

func (s *SSHRunner) Host() string { return s.Nickname }

func (s *SSHRunner) sshArgs() []string {
	args := []string{
		"-o", "ControlMaster=auto",
		"-o", "ControlPath=/tmp/muxpick-ssh-%r@%h:%p",
		"-o", "ControlPersist=60",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if s.SSHKey != "" {
		args = append(args, "-i", s.SSHKey)
	}
	if s.User != "" {
		args = append(args, fmt.Sprintf("%s@%s", s.User, s.Addr))
	} else {
		args = append(args, s.Addr)
	}
	return args
}

// remoteCommand builds the single shell string ssh sends to the remote side.
func remoteCommand(bin string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(bin))
	for _, a := range args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

func (s *SSHRunner) LookPath(bin string) (string, error) {
	res, err := s.Output(context.Background(), "command", "-v", bin)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(res.Stdout)
	if res.ExitCode != 0 || path == "" {
		return "", fmt.Errorf("%s on %s: %w", bin, s.Nickname, exec.ErrNotFound)
	}
	return path, nil
}

func (s *SSHRunner) Output(ctx context.Context, bin string, args ...string) (Result, error) {
	sshArgs := append(s.sshArgs(), remoteCommand(bin, args))
	cmd := exec.CommandContext(ctx, "ssh", sshArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	res, err := result(cmd.Run(), &stdout, &stderr)
	if err == nil && res.ExitCode == sshFailure {
		return res, fmt.Errorf("ssh %s: %s", s.Nickname, res.Stderr)
	}
	return res, err
}

func (s *SSHRunner) Interactive(bin string, args ...string) (int, error) {
	sshArgs := []string{"-t"}
	sshArgs = append(sshArgs, s.sshArgs()...)
	sshArgs = append(sshArgs, remoteCommand(bin, args))
	cmd := exec.Command("ssh", sshArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = filterTMUX(os.Environ())
	return exitCode(cmd.Run())
}

// shellQuote wraps a string in single quotes, escaping any single quotes inside.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
