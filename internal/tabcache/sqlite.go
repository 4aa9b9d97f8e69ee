// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a file-backed Store for offline and development use: a single
// process keeps its fetched tabs across runs without any server.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates the cache database at path, creating parent
// directories and the schema as needed.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tabs (
		key TEXT PRIMARY KEY,
		fetched_at TEXT NOT NULL,
		rows_json TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Get implements Store. Rows that fail to decode are misses.
func (s *SQLite) Get(ctx context.Context, key string) (Entry, bool) {
	var fetchedAt, rowsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT fetched_at, rows_json FROM tabs WHERE key = ?`, key,
	).Scan(&fetchedAt, &rowsJSON)
	if err != nil {
		return Entry{}, false
	}

	ts, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return Entry{}, false
	}

	var rows [][]string
	if err := json.Unmarshal([]byte(rowsJSON), &rows); err != nil || rows == nil {
		return Entry{}, false
	}
	return Entry{FetchedAt: ts, Rows: rows}, true
}

// Set implements Store.
func (s *SQLite) Set(ctx context.Context, key string, rows [][]string) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	s.db.ExecContext(ctx,
		`INSERT INTO tabs (key, fetched_at, rows_json) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET fetched_at = excluded.fetched_at, rows_json = excluded.rows_json`,
		key, time.Now().Format(time.RFC3339Nano), raw)
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
