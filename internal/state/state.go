// Package state keeps a journal of the actions muxpick dispatched.
// Session state itself always lives in the authority.
package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS actions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    authority   TEXT NOT NULL,
    host        TEXT NOT NULL DEFAULT '',
    action      TEXT NOT NULL,
    session     TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS actions_created_at ON actions (created_at);
`

// Store wraps a SQLite database holding the action journal.
type Store struct {
	db *sql.DB
}

// Entry is one journaled action.
type Entry struct {
	Authority string
	Host      string
	Action    string
	Session   string
	At        time.Time
}

// DefaultPath returns $XDG_STATE_HOME/muxpick/state.db.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "muxpick", "state.db"), nil
}

// Open creates or opens the journal at the default location.
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath creates or opens the journal at path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL mode for safe concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends an entry to the journal.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO actions (authority, host, action, session, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, e.Authority, e.Host, e.Action, e.Session)
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT authority, host, action, session, created_at
		FROM actions
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.Authority, &e.Host, &e.Action, &e.Session, &at); err != nil {
			return nil, err
		}
		e.At = parseTime(at)
		result = append(result, e)
	}
	return result, rows.Err()
}

// parseTime accepts the layouts the sqlite driver hands back for
// CURRENT_TIMESTAMP columns.
func parseTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
