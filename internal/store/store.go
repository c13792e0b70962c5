// Package store is the SQLite data access layer for the analysis history.
// Every successful parse request can be recorded as one row: input metadata,
// headline counts, and the full summary document.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the analyses table and its index. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS analyses (
  id               INTEGER PRIMARY KEY,
  language         TEXT NOT NULL,
  hash             TEXT NOT NULL,
  line_count       INTEGER NOT NULL,
  root_type        TEXT NOT NULL,
  function_count   INTEGER NOT NULL,
  loop_count       INTEGER NOT NULL,
  recursive_count  INTEGER NOT NULL,
  summary          TEXT NOT NULL,
  created_at       TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(hash);
`

// InsertAnalysis records one analysis and returns its row ID.
func (s *Store) InsertAnalysis(a *Analysis) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO analyses
		   (language, hash, line_count, root_type, function_count, loop_count, recursive_count, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Language, a.Hash, a.LineCount, a.RootType,
		a.FunctionCount, a.LoopCount, a.RecursiveCount, a.Summary, a.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: insert analysis id: %w", err)
	}
	a.ID = id
	return id, nil
}

// AnalysisByID returns one analysis, or nil if the ID is unknown.
func (s *Store) AnalysisByID(id int64) (*Analysis, error) {
	row := s.db.QueryRow(selectAnalysis+` WHERE id = ?`, id)
	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: analysis by id: %w", err)
	}
	return a, nil
}

// RecentAnalyses returns up to limit analyses, newest first.
func (s *Store) RecentAnalyses(limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(selectAnalysis+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: recent analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("store: recent analyses: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// CountAnalyses returns the total number of recorded analyses.
func (s *Store) CountAnalyses() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count analyses: %w", err)
	}
	return n, nil
}

const selectAnalysis = `
SELECT id, language, hash, line_count, root_type, function_count, loop_count, recursive_count, summary, created_at
FROM analyses`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(sc scanner) (*Analysis, error) {
	var a Analysis
	err := sc.Scan(
		&a.ID, &a.Language, &a.Hash, &a.LineCount, &a.RootType,
		&a.FunctionCount, &a.LoopCount, &a.RecursiveCount, &a.Summary, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
