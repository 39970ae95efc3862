package store

import (
	"context"
	"database/sql"
	"time"

	"project-tracker/internal/errors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteStore implements the Store interface on a single-table SQLite
// database. Writes are bounded by writeTimeout when it is positive.
type SQLiteStore struct {
	db           *sql.DB
	writeTimeout time.Duration
}

// NewSQLiteStore opens (or creates) the database at the given path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string, writeTimeout time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("create schema", err)
	}

	return &SQLiteStore{db: db, writeTimeout: writeTimeout}, nil
}

// Get returns the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewPersistenceError("get value", err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewPersistenceError("set value", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
