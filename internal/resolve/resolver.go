package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/simon/muxpick/internal/session"
)

// ResetKeyword kills every listed session. While sessions exist it cannot
// be used as a new session name.
const ResetKeyword = "reset"

// Resolver maps input lines to actions for one listing.
type Resolver struct {
	sessions []session.Record
	letters  *session.LetterMap
	newID    func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIDGenerator replaces the generator used for unnamed sessions.
func WithIDGenerator(fn func() string) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// New builds a Resolver, designating letters in listing order.
func New(sessions []session.Record, opts ...Option) *Resolver {
	r := &Resolver{
		sessions: sessions,
		letters:  session.NewLetterMap(sessions),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Letters returns the letter map shown to the user.
func (r *Resolver) Letters() *session.LetterMap {
	return r.letters
}

func (r *Resolver) hasSessions() bool {
	return len(r.sessions) > 0
}

// Validate checks an input line without resolving it.
func (r *Resolver) Validate(input string) error {
	trimmed := strings.TrimSpace(input)
	if utf8.RuneCountInString(trimmed) != 1 {
		return nil
	}
	if !r.hasSessions() {
		if c, _ := utf8.DecodeRuneInString(trimmed); unicode.IsLetter(c) {
			return &ValidationError{Input: trimmed}
		}
		return nil
	}
	if _, ok := r.letters.Lookup(strings.ToLower(trimmed)); !ok {
		return &ValidationError{Input: trimmed, Valid: r.letters.Keys()}
	}
	return nil
}

// Resolve validates and resolves one input line. Empty input creates a
// session with a fresh identifier.
func (r *Resolver) Resolve(input string) (Action, error) {
	if err := r.Validate(input); err != nil {
		return Action{}, err
	}
	trimmed := strings.TrimSpace(input)

	if !r.hasSessions() {
		if trimmed == "" {
			return Action{Kind: Create, Name: r.newID()}, nil
		}
		return Action{Kind: Create, Name: trimmed}, nil
	}

	lower := strings.ToLower(trimmed)
	switch {
	case lower == ResetKeyword:
		return Action{Kind: KillAll, Sessions: r.sessions}, nil
	case trimmed == "":
		return Action{Kind: Create, Name: r.newID()}, nil
	case utf8.RuneCountInString(lower) == 1:
		name, _ := r.letters.Lookup(lower)
		return Action{Kind: Attach, Name: name}, nil
	default:
		return Action{Kind: Create, Name: trimmed}, nil
	}
}

// Cancel is the action for an aborted prompt.
func (r *Resolver) Cancel() Action {
	return Action{Kind: Cancel}
}
