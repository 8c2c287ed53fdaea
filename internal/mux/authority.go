// Package mux talks to the external session authority (tmux, shpool, zmx):
// it lists sessions and dispatches attach, create and kill to the daemon.
package mux

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/simon/muxpick/internal/session"
)

// Authority is the external program that owns all session state.
type Authority interface {
	Name() string
	// Check reports a *MissingError when the authority binary is unavailable.
	Check(ctx context.Context) error
	// List returns sessions in the order the authority emits them.
	List(ctx context.Context) ([]session.Record, error)
	// Attach and Create hand the terminal to the authority and return the
	// child's exit code once it terminates.
	Attach(name string) (int, error)
	Create(name string) (int, error)
	Kill(ctx context.Context, name string) error
}

// dialect captures everything that differs between authorities.
type dialect struct {
	name       string
	listArgs   []string
	empty      func(Result) bool
	parse      func(string) []session.Record
	attachArgs func(name string) []string
	createArgs func(name string) []string
	killArgs   func(name string) []string
}

// Backend is an Authority driven by a dialect and a Runner.
type Backend struct {
	dialect dialect
	bin     string
	runner  Runner
	logger  *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithBinary overrides the authority executable (name or path).
func WithBinary(bin string) Option {
	return func(b *Backend) {
		if bin != "" {
			b.bin = bin
		}
	}
}

// WithLogger sets the logger used for subprocess tracing.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

func newBackend(d dialect, runner Runner, opts ...Option) *Backend {
	if runner == nil {
		runner = LocalRunner{}
	}
	b := &Backend{
		dialect: d,
		bin:     d.name,
		runner:  runner,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string { return b.dialect.name }

func (b *Backend) Check(_ context.Context) error {
	if _, err := b.runner.LookPath(b.bin); err != nil {
		return b.missing(err)
	}
	return nil
}

func (b *Backend) missing(err error) error {
	return &MissingError{
		Authority: b.dialect.name,
		Host:      b.runner.Host(),
		Hint:      InstallHint(b.dialect.name, goos),
		Err:       err,
	}
}

func (b *Backend) List(ctx context.Context) ([]session.Record, error) {
	b.trace("list", b.dialect.listArgs)
	res, err := b.runner.Output(ctx, b.bin, b.dialect.listArgs...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, b.missing(err)
		}
		return nil, &ListingError{Authority: b.dialect.name, Err: err}
	}
	if b.dialect.empty(res) {
		b.logger.Debug("authority reports no sessions", "authority", b.dialect.name)
		return nil, nil
	}
	if res.ExitCode != 0 {
		return nil, &ListingError{Authority: b.dialect.name, Err: exitError(res)}
	}
	return b.dialect.parse(res.Stdout), nil
}

func (b *Backend) Attach(name string) (int, error) {
	args := b.dialect.attachArgs(name)
	b.trace("attach", args)
	return b.runner.Interactive(b.bin, args...)
}

func (b *Backend) Create(name string) (int, error) {
	args := b.dialect.createArgs(name)
	b.trace("create", args)
	return b.runner.Interactive(b.bin, args...)
}

func (b *Backend) Kill(ctx context.Context, name string) error {
	args := b.dialect.killArgs(name)
	b.trace("kill", args)
	res, err := b.runner.Output(ctx, b.bin, args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return exitError(res)
	}
	return nil
}

func (b *Backend) trace(op string, args []string) {
	b.logger.Debug("running authority command",
		"op", op, "authority", b.dialect.name, "bin", b.bin, "args", args, "host", b.runner.Host())
}

func exitError(res Result) error {
	if res.Stderr == "" {
		return fmt.Errorf("exit status %d", res.ExitCode)
	}
	return fmt.Errorf("exit status %d: %s", res.ExitCode, res.Stderr)
}
