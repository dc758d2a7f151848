// internal/highscore/sql.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded schema migrations (idempotent, recorded in _migrations).
//   - Loading and replacing the ranked list inside a transaction.

package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migrations are applied in order; names are recorded in _migrations.
var migrations = []struct {
	name string
	sql  string
}{
	{"001_highscores", `
CREATE TABLE IF NOT EXISTS highscores (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    score      INTEGER NOT NULL CHECK (score >= 0),
    name       TEXT    NOT NULL,
    created_at TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);`},
	{"002_highscores_score_idx", `
CREATE INDEX IF NOT EXISTS highscores_score_idx ON highscores (score DESC, id ASC);`},
}

// SQLStore keeps the highscore list in a SQLite table.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (and creates if missing) the SQLite database at path
// and applies migrations.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error { return s.db.Close() }

// Load returns the ranked list, best first.
func (s *SQLStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT score, name
        FROM highscores
        ORDER BY score DESC, id ASC
        LIMIT ?`, Capacity,
	)
	if err != nil {
		return nil, fmt.Errorf("query highscores: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, Capacity)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Score, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Save replaces the stored list in a single transaction.
func (s *SQLStore) Save(ctx context.Context, list []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM highscores`); err != nil {
		return fmt.Errorf("clear highscores: %w", err)
	}
	for _, e := range Normalize(list) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO highscores (score, name) VALUES (?, ?)`, e.Score, e.Name,
		); err != nil {
			return fmt.Errorf("insert highscore: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit highscores: %w", err)
	}
	log.Debug().Int("entries", len(list)).Msg("highscores saved to db")
	return nil
}

// openDB opens a SQLite database file, creating its parent directory.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every migration not yet recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}
