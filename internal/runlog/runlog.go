package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"marquee/internal/config"
)

const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id               TEXT PRIMARY KEY,
    started_at       TEXT NOT NULL,
    finished_at      TEXT NOT NULL,
    mode             TEXT NOT NULL,
    source           TEXT NOT NULL DEFAULT '',
    days             INTEGER NOT NULL DEFAULT 0,
    showings         INTEGER NOT NULL DEFAULT 0,
    matched          INTEGER NOT NULL DEFAULT 0,
    unmatched        INTEGER NOT NULL DEFAULT 0,
    unmatched_titles TEXT NOT NULL DEFAULT '[]',
    duplicate_dates  TEXT NOT NULL DEFAULT '[]'
);
`

// Run is one journal entry.
type Run struct {
	ID              string
	StartedAt       time.Time
	FinishedAt      time.Time
	Mode            string
	Source          string
	Days            int
	Showings        int
	Matched         int
	Unmatched       int
	UnmatchedTitles []string
	DuplicateDates  []string
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.JournalDir, "runs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk database location.
func (s *Store) Path() string {
	return s.path
}

// Begin opens a new run entry with a fresh id and start timestamp.
func Begin(mode, source string) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Mode:      strings.TrimSpace(mode),
		Source:    strings.TrimSpace(source),
	}
}

// Record persists a completed run. The finish timestamp is filled in when
// the caller left it zero.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("record run: id is required")
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}
	unmatched, err := json.Marshal(run.UnmatchedTitles)
	if err != nil {
		return fmt.Errorf("encode unmatched titles: %w", err)
	}
	duplicates, err := json.Marshal(run.DuplicateDates)
	if err != nil {
		return fmt.Errorf("encode duplicate dates: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, mode, source,
            days, showings, matched, unmatched, unmatched_titles, duplicate_dates
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Mode,
		run.Source,
		run.Days,
		run.Showings,
		run.Matched,
		run.Unmatched,
		string(unmatched),
		string(duplicates),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, started_at, finished_at, mode, source,
        days, showings, matched, unmatched, unmatched_titles, duplicate_dates
        FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished, unmatched, duplicates string
		if err := rows.Scan(
			&run.ID, &started, &finished, &run.Mode, &run.Source,
			&run.Days, &run.Showings, &run.Matched, &run.Unmatched,
			&unmatched, &duplicates,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		if err := json.Unmarshal([]byte(unmatched), &run.UnmatchedTitles); err != nil {
			return nil, fmt.Errorf("decode unmatched titles: %w", err)
		}
		if err := json.Unmarshal([]byte(duplicates), &run.DuplicateDates); err != nil {
			return nil, fmt.Errorf("decode duplicate dates: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *Store) applySchema(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("journal schema version %d is newer than supported %d", version, schemaVersion)
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if version < schemaVersion {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	return nil
}
