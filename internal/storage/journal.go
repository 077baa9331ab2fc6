// Package storage provides the SQLite-backed attempt journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal normally lives in memory for the lifetime of the process;
// a file path is accepted for inspection and tests.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Journal records finished attempts.
// It is safe for concurrent use by multiple sessions.
type Journal struct {
	db *sql.DB
}

// Attempt is one finished run of the game.
type Attempt struct {
	ID        int64
	SessionID string
	GameID    string
	Number    int // Attempt counter within the session
	Score     int
	Tier      string // Tier active when the attempt ended
	CreatedAt time.Time
}

// Summary aggregates the attempts of a session or a game.
type Summary struct {
	Attempts int
	Best     int
	Average  float64
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a journal. An empty dsn or MemoryDSN keeps the
// journal in memory; anything else is a file path whose parent directories
// are created as needed.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	if dsn != MemoryDSN {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			attempt INTEGER NOT NULL,
			score INTEGER NOT NULL,
			tier TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(game_id, score DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// RecordAttempt stores a finished attempt. A zero CreatedAt is set to now.
// Returns the ID of the inserted record.
func (j *Journal) RecordAttempt(a Attempt) (int64, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	result, err := j.db.Exec(
		`INSERT INTO attempts (session_id, game_id, attempt, score, tier, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.SessionID, a.GameID, a.Number, a.Score, a.Tier, a.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopAttempts retrieves the best attempts for the given game.
// Results are ordered by score descending, earlier attempts first on ties.
func (j *Journal) TopAttempts(gameID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT id, session_id, game_id, attempt, score, tier, created_at
		 FROM attempts
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.SessionID, &a.GameID, &a.Number, &a.Score, &a.Tier, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionSummary aggregates the attempts of one session.
func (j *Journal) SessionSummary(sessionID string) (Summary, error) {
	return j.summary("session_id = ?", sessionID)
}

// GameSummary aggregates every attempt of a game.
func (j *Journal) GameSummary(gameID string) (Summary, error) {
	return j.summary("game_id = ?", gameID)
}

func (j *Journal) summary(where string, arg any) (Summary, error) {
	var s Summary
	err := j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM attempts WHERE `+where,
		arg,
	).Scan(&s.Attempts, &s.Best, &s.Average)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize attempts: %w", err)
	}
	return s, nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
