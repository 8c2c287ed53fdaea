package mux

import "fmt"

// MissingError reports that the authority binary is not on the search path.
type MissingError struct {
	Authority string
	Host      string
	Hint      string
	Err       error
}

func (e *MissingError) Error() string {
	where := "PATH"
	if e.Host != "" {
		where = "PATH on " + e.Host
	}
	return fmt.Sprintf("%s not found on %s", e.Authority, where)
}

func (e *MissingError) Unwrap() error { return e.Err }

// ListingError reports a list command that failed for a reason other than
// the authority having no sessions.
type ListingError struct {
	Authority string
	Err       error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing %s sessions: %v", e.Authority, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }
