// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrAmbiguousID is returned by Run when an ID prefix matches several runs.
var ErrAmbiguousID = errors.New("ambiguous run id")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished session together with everything needed to replay it.
type Run struct {
	ID             string
	Seed           int64
	GridW          int
	GridH          int
	InitialLength  int
	InitialHeading string
	SpawnAttempts  int // Food retry cap; part of the RNG sequence
	TickRate       int
	Ticks          int
	Score          int
	EndReason      string
	Moves          string // Encoded command journal
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			grid_w INTEGER NOT NULL,
			grid_h INTEGER NOT NULL,
			initial_length INTEGER NOT NULL,
			initial_heading TEXT NOT NULL,
			spawn_attempts INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			moves TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
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

// SaveRun records a finished run and returns its generated ID.
// Any ID already set on run is ignored.
func (s *Store) SaveRun(run Run) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, seed, grid_w, grid_h, initial_length, initial_heading, spawn_attempts,
		  tick_rate, ticks, score, end_reason, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		run.Seed,
		run.GridW,
		run.GridH,
		run.InitialLength,
		run.InitialHeading,
		run.SpawnAttempts,
		run.TickRate,
		run.Ticks,
		run.Score,
		run.EndReason,
		run.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

const runColumns = `id, seed, grid_w, grid_h, initial_length, initial_heading,
	spawn_attempts, tick_rate, ticks, score, end_reason, moves, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Seed,
		&r.GridW,
		&r.GridH,
		&r.InitialLength,
		&r.InitialHeading,
		&r.SpawnAttempts,
		&r.TickRate,
		&r.Ticks,
		&r.Score,
		&r.EndReason,
		&r.Moves,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Run retrieves a run by ID. Returns nil, nil if it does not exist.
// A unique ID prefix is accepted as well; it is matched literally.
func (s *Store) Run(id string) (*Run, error) {
	if id == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE substr(id, 1, length(?)) = ? ORDER BY id LIMIT 2`,
		id, id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID == id {
			return &r, nil
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("storage: %w: %q", ErrAmbiguousID, id)
	}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run. Deleting a missing run is not an error.
func (s *Store) DeleteRun(id string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}
