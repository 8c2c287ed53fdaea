// Package resolve turns one line of user input into the action to take on
// the listed sessions.
package resolve

import (
	"fmt"
	"strings"

	"github.com/simon/muxpick/internal/session"
)

// Kind tags an Action.
type Kind int

const (
	Cancel Kind = iota
	Attach
	Create
	KillAll
)

func (k Kind) String() string {
	switch k {
	case Attach:
		return "attach"
	case Create:
		return "create"
	case KillAll:
		return "kill-all"
	default:
		return "cancel"
	}
}

// Action is the outcome of resolving one input line. Name is set for Attach
// and Create, Sessions for KillAll.
type Action struct {
	Kind     Kind
	Name     string
	Sessions []session.Record
}

func (a Action) String() string {
	switch a.Kind {
	case Attach, Create:
		return fmt.Sprintf("%s %q", a.Kind, a.Name)
	case KillAll:
		return fmt.Sprintf("%s (%d sessions)", a.Kind, len(a.Sessions))
	default:
		return a.Kind.String()
	}
}

// ValidationError rejects an input line; the prompt shows it and asks again.
type ValidationError struct {
	Input string
	Valid []string // valid letter choices, empty when there are no sessions
}

func (e *ValidationError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%q is too short: session names need at least two characters", e.Input)
	}
	return fmt.Sprintf("%q is not a listed session, choose one of: %s", e.Input, strings.Join(e.Valid, ", "))
}
