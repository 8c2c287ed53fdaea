// Package actuator carries out a resolved action against the authority.
package actuator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/simon/muxpick/internal/session"
)

// Authority is the subset of mux.Authority the actuator dispatches to.
type Authority interface {
	Name() string
	Attach(name string) (int, error)
	Create(name string) (int, error)
	Kill(ctx context.Context, name string) error
}

// ActionError reports an attach, create or kill that could not be run.
type ActionError struct {
	Op      string
	Session string
	Err     error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Session, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// KillAllError lists the sessions whose kill failed. Every session was
// still attempted.
type KillAllError struct {
	Failed []string
	Errs   []error
}

func (e *KillAllError) Error() string {
	return fmt.Sprintf("failed to kill %d session(s): %s", len(e.Failed), strings.Join(e.Failed, ", "))
}

func (e *KillAllError) Unwrap() []error { return e.Errs }

// Actuator dispatches actions. Attach and Create end the process.
type Actuator struct {
	authority Authority
	exit      func(int)
	logger    *slog.Logger
}

// Option configures an Actuator.
type Option func(*Actuator)

// WithExit replaces os.Exit, for tests.
func WithExit(fn func(int)) Option {
	return func(a *Actuator) { a.exit = fn }
}

// WithLogger sets the actuator's logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Actuator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an Actuator for the given authority.
func New(authority Authority, opts ...Option) *Actuator {
	a := &Actuator{
		authority: authority,
		exit:      os.Exit,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Attach hands the terminal to the authority's attach command, then exits
// with the child's status. It only returns if the child could not be run.
func (a *Actuator) Attach(name string) error {
	return a.handoff("attach", name, a.authority.Attach)
}

// Create is Attach for a new session.
func (a *Actuator) Create(name string) error {
	return a.handoff("create", name, a.authority.Create)
}

func (a *Actuator) handoff(op, name string, run func(string) (int, error)) error {
	a.logger.Debug("handing terminal to authority", "op", op, "session", name, "authority", a.authority.Name())
	code, err := run(name)
	if err != nil {
		return &ActionError{Op: op, Session: name, Err: err}
	}
	if code < 0 {
		code = 0
	}
	a.logger.Debug("authority exited", "op", op, "session", name, "code", code)
	a.exit(code)
	return nil
}

// KillAll kills every session in order. A failed kill does not stop the
// remaining ones; all failures are reported together.
func (a *Actuator) KillAll(ctx context.Context, sessions []session.Record) error {
	var failed []string
	var errs []error
	for _, s := range sessions {
		if err := a.authority.Kill(ctx, s.Name); err != nil {
			a.logger.Debug("kill failed", "session", s.Name, "err", err)
			failed = append(failed, s.Name)
			errs = append(errs, &ActionError{Op: "kill", Session: s.Name, Err: err})
		}
	}
	if len(failed) > 0 {
		return &KillAllError{Failed: failed, Errs: errs}
	}
	return nil
}

// Kill kills a single session.
func (a *Actuator) Kill(ctx context.Context, name string) error {
	if err := a.authority.Kill(ctx, name); err != nil {
		return &ActionError{Op: "kill", Session: name, Err: err}
	}
	return nil
}

// IsKillAll reports whether err came from KillAll.
func IsKillAll(err error) bool {
	var k *KillAllError
	return errors.As(err, &k)
}
