// Package store persists game sessions, achievement unlocks and challenge
// progress in a local SQLite database. The engine packages never import it;
// they hand snapshots to callers who decide where they go.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas
// and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Sessions returns a SessionRepo backed by this store.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{db: s.db}
}

// Achievements returns an AchievementRepo backed by this store.
func (s *Store) Achievements() AchievementRepo {
	return &achievementRepo{db: s.db}
}

// Challenges returns a ChallengeRepo backed by this store.
func (s *Store) Challenges() ChallengeRepo {
	return &challengeRepo{db: s.db}
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	timestamp       INTEGER NOT NULL,
	mode            TEXT NOT NULL,
	difficulty      TEXT NOT NULL,
	notation        TEXT NOT NULL,
	score           INTEGER NOT NULL,
	streak          INTEGER NOT NULL,
	max_streak      INTEGER NOT NULL,
	total_questions INTEGER NOT NULL,
	correct_answers INTEGER NOT NULL,
	accuracy        INTEGER NOT NULL,
	duration_secs   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp);

CREATE TABLE IF NOT EXISTS achievements (
	id          TEXT PRIMARY KEY,
	unlocked_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS challenge_progress (
	kind   TEXT PRIMARY KEY,
	amount INTEGER NOT NULL
);
`

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. STAFFHERO_DB environment variable
// 2. $XDG_DATA_HOME/staffhero/staffhero.db
// 3. ~/.local/share/staffhero/staffhero.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STAFFHERO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "staffhero", "staffhero.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
