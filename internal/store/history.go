// Package store persists solve results to SQLite so answers and timings can
// be compared across runs. The store is observability only: disabling it
// changes no answer.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// HistoryStore persists solve results to SQLite.
type HistoryStore struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Entry is a single recorded solve.
type Entry struct {
	ID         int64
	RunID      string
	Day        int
	Title      string
	PartOne    string
	PartTwo    string
	DurationMs int64
	CreatedAt  time.Time
}

// NewHistoryStore opens (creating if needed) the history database at the
// given path. Use ":memory:" for an ephemeral store in tests.
func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	// In-memory databases report "memory" here; that is fine.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}

	s := &HistoryStore{db: db, dbPath: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// initialize creates the database schema.
func (s *HistoryStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		title TEXT NOT NULL,
		part_one TEXT NOT NULL,
		part_two TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_day ON results(day);
	CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record persists one solve result.
func (s *HistoryStore) Record(runID string, day int, title, partOne, partTwo string, duration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO results (run_id, day, title, part_one, part_two, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, day, title, partOne, partTwo, duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}

// History returns recorded results, newest first. A day of 0 means all
// days; limit <= 0 means no limit.
func (s *HistoryStore) History(day, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT id, run_id, day, title, part_one, part_two, duration_ms, created_at
		FROM results`
	args := []any{}
	if day > 0 {
		query += " WHERE day = ?"
		args = append(args, day)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Day, &e.Title, &e.PartOne, &e.PartTwo, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
