package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// InMemory is the DSN for a process-lifetime database.
const InMemory = ":memory:"

// Store is the history log.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append inserts an entry. A duplicate (session, seq) is an error.
func (s *Store) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (session_id, seq, kind, expression, result)
		VALUES (?, ?, ?, ?, ?)
	`, e.SessionID, e.Seq, e.Kind, e.Expression, e.Result)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// List returns a session's entries, oldest first.
func (s *Store) List(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, kind, expression, result
		FROM entries
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SessionID, &e.Seq, &e.Kind, &e.Expression, &e.Result); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of entries for a session.
func (s *Store) Count(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entries WHERE session_id = ?", sessionID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Trim deletes all but the newest keep entries of a session.
func (s *Store) Trim(ctx context.Context, sessionID string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM entries
		WHERE session_id = ?
		AND seq NOT IN (
			SELECT seq FROM entries
			WHERE session_id = ?
			ORDER BY seq DESC
			LIMIT ?
		)
	`, sessionID, sessionID, keep)
	if err != nil {
		return fmt.Errorf("trim entries: %w", err)
	}
	return nil
}

// Clear deletes all entries of a session.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}
