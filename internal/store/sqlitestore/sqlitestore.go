// Package sqlitestore keeps reminders in a SQLite preferences table.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/idilsaglam/reminders/internal/store"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS prefs (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL DEFAULT '',
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (namespace, key)
);
`

// Store wraps a sql.DB scoped to one namespace.
type Store struct {
	conn      *sql.DB
	namespace string
}

// Open opens (or creates) the database file at path and applies the schema.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", fileDSN(path))
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlitestore: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlitestore: apply schema: %w", err)
	}
	return &Store{conn: conn, namespace: store.Namespace}, nil
}

// fileDSN turns a filesystem path into a file: URI carrying the driver
// options, so paths containing '?' or '#' stay intact.
func fileDSN(path string) string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	u := url.URL{Scheme: "file", Opaque: (&url.URL{Path: path}).EscapedPath(), RawQuery: q.Encode()}
	return u.String()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Get(key, def string) (string, error) {
	var v string
	err := s.conn.QueryRow(
		`SELECT value FROM prefs WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlitestore: get %q: %w", key, err)
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	if err := store.CheckText(key, value); err != nil {
		return err
	}
	_, err := s.conn.Exec(`
		INSERT INTO prefs (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at
	`, s.namespace, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlitestore: set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if _, err := s.conn.Exec(
		`DELETE FROM prefs WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	); err != nil {
		return fmt.Errorf("sqlitestore: remove %q: %w", key, err)
	}
	return nil
}
