// Package picker runs one interactive cycle: list the authority's sessions,
// prompt for a line, resolve it and carry out the action.
package picker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/simon/muxpick/internal/actuator"
	"github.com/simon/muxpick/internal/mux"
	"github.com/simon/muxpick/internal/resolve"
	"github.com/simon/muxpick/internal/state"
	"github.com/simon/muxpick/internal/tui"
	"github.com/simon/muxpick/internal/ui"
)

// PromptFunc reads one line; it returns tui.ErrCancelled when the user aborts.
type PromptFunc func(ctx context.Context, req tui.Request) (string, error)

// Journal records dispatched actions.
type Journal interface {
	Record(ctx context.Context, e state.Entry) error
}

// Picker wires the interactive cycle together.
type Picker struct {
	Authority   mux.Authority
	Actuator    *actuator.Actuator
	Prompt      PromptFunc
	Journal     Journal // optional
	Host        string
	Placeholder string
	Logger      *slog.Logger
	// Resolver options, e.g. a fixed identifier generator in tests.
	ResolveOptions []resolve.Option
}

func (p *Picker) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Run performs one cycle. A cancelled prompt returns nil without acting.
// A successful attach or create does not return: the process exits with
// the authority's status.
func (p *Picker) Run(ctx context.Context) error {
	if err := p.Authority.Check(ctx); err != nil {
		return err
	}

	sessions, err := p.Authority.List(ctx)
	if err != nil {
		return err
	}
	p.logger().Debug("listed sessions", "authority", p.Authority.Name(), "count", len(sessions))

	r := resolve.New(sessions, p.ResolveOptions...)
	prompt := p.Prompt
	if prompt == nil {
		prompt = tui.Prompt
	}

	line, err := prompt(ctx, tui.Request{
		Authority:   p.Authority.Name(),
		Host:        p.Host,
		Sessions:    sessions,
		Letters:     r.Letters(),
		Placeholder: p.Placeholder,
		Validate:    r.Validate,
	})
	var action resolve.Action
	switch {
	case errors.Is(err, tui.ErrCancelled):
		action = r.Cancel()
	case err != nil:
		return err
	default:
		action, err = r.Resolve(line)
		if err != nil {
			return err
		}
	}

	return p.Dispatch(ctx, action)
}

// Dispatch carries out a resolved action.
func (p *Picker) Dispatch(ctx context.Context, action resolve.Action) error {
	p.logger().Debug("dispatching", "action", action.String())

	switch action.Kind {
	case resolve.Cancel:
		return nil

	case resolve.Attach:
		p.record(ctx, "attach", action.Name)
		return p.Actuator.Attach(action.Name)

	case resolve.Create:
		p.record(ctx, "create", action.Name)
		return p.Actuator.Create(action.Name)

	case resolve.KillAll:
		for _, s := range action.Sessions {
			p.record(ctx, "kill", s.Name)
		}
		err := ui.WithSpinner(fmt.Sprintf("Killing %d session(s)...", len(action.Sessions)), func() error {
			return p.Actuator.KillAll(ctx, action.Sessions)
		})
		if err != nil {
			return err
		}
		ui.Successf("Killed %d session(s)", len(action.Sessions))
		return nil

	default:
		return fmt.Errorf("unknown action %v", action.Kind)
	}
}

// record journals an action; a journal failure never blocks the action.
func (p *Picker) record(ctx context.Context, action, name string) {
	if p.Journal == nil {
		return
	}
	err := p.Journal.Record(ctx, state.Entry{
		Authority: p.Authority.Name(),
		Host:      p.Host,
		Action:    action,
		Session:   name,
	})
	if err != nil {
		p.logger().Warn("could not journal action", "action", action, "session", name, "err", err)
	}
}
