// Package storage keeps the ledger of sessions played during this run.
// Uses the pure-Go modernc.org/sqlite driver on an in-memory database, so
// nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite ledger.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SessionEntry is one finished game session.
type SessionEntry struct {
	ID              string
	Score           int
	BricksDestroyed int
	Frames          int
	EndedAt         time.Time
}

// SessionStats summarizes a finished session for recording.
type SessionStats struct {
	Score           int
	BricksDestroyed int
	Frames          int
}

// OpenMemory opens a private in-memory ledger and creates its schema.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordSession stores a finished session under a fresh id.
func (s *Store) RecordSession(stats SessionStats) (SessionEntry, error) {
	entry := SessionEntry{
		ID:              uuid.NewString(),
		Score:           stats.Score,
		BricksDestroyed: stats.BricksDestroyed,
		Frames:          stats.Frames,
		EndedAt:         s.now().UTC().Truncate(time.Millisecond),
	}

	_, err := s.db.Exec(
		"INSERT INTO sessions (id, score, bricks_destroyed, frames, ended_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.Score, entry.BricksDestroyed, entry.Frames, entry.EndedAt.UnixMilli(),
	)
	if err != nil {
		return SessionEntry{}, fmt.Errorf("storage: cannot record session: %w", err)
	}

	return entry, nil
}

// BestScore returns the highest recorded score, or 0 if none.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(best.Int64), nil
}

// SessionCount returns the number of recorded sessions.
func (s *Store) SessionCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return count, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	return s.query(
		`SELECT id, score, bricks_destroyed, frames, ended_at
		 FROM sessions
		 ORDER BY seq DESC
		 LIMIT ?`,
		normalizeLimit(limit),
	)
}

func (s *Store) query(q string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var endedAt int64
		if err := rows.Scan(&e.ID, &e.Score, &e.BricksDestroyed, &e.Frames, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = time.UnixMilli(endedAt).UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}
