// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps an opt-in SQLite log of past runs so earlier
// reports can be listed and re-read without hitting the API again. The
// fetch pipeline itself stays single-pass and in-memory; the archive is
// written once at the end of a run.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// Store manages the run archive SQLite database.
type Store struct {
	db *sql.DB
}

// Run is one archived invocation.
type Run struct {
	ID       int64
	Query    string
	Started  time.Time
	RowCount int
}

// Open opens or creates the archive database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			started TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rows (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			pmid TEXT NOT NULL,
			title TEXT,
			pub_date TEXT,
			authors TEXT,
			affiliations TEXT,
			email TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_run_id ON rows(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run and its rows in a single transaction and returns
// the new run ID.
func (s *Store) Record(ctx context.Context, query string, rows []types.Row) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, started, row_count) VALUES (?, ?, ?)`,
		query, time.Now().UTC().Format(time.RFC3339), len(rows))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, row := range rows {
		authors, err := json.Marshal(row.Authors)
		if err != nil {
			return 0, fmt.Errorf("encoding authors for %s: %w", row.PMID, err)
		}
		affiliations, err := json.Marshal(row.Affiliations)
		if err != nil {
			return 0, fmt.Errorf("encoding affiliations for %s: %w", row.PMID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rows (run_id, pmid, title, pub_date, authors, affiliations, email)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, row.PMID, row.Title, row.PubDate, string(authors), string(affiliations), row.Email,
		); err != nil {
			return 0, fmt.Errorf("inserting row %s: %w", row.PMID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs lists archived runs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, started, row_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Query, &started, &r.RowCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, started); parseErr == nil {
			r.Started = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunRows returns the report rows of one archived run in insertion order.
func (s *Store) RunRows(ctx context.Context, runID int64) ([]types.Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pmid, title, pub_date, authors, affiliations, email
		 FROM rows WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying rows for run %d: %w", runID, err)
	}
	defer rows.Close()

	var result []types.Row
	for rows.Next() {
		var row types.Row
		var authors, affiliations string
		if err := rows.Scan(&row.PMID, &row.Title, &row.PubDate, &authors, &affiliations, &row.Email); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if err := json.Unmarshal([]byte(authors), &row.Authors); err != nil {
			return nil, fmt.Errorf("decoding authors for %s: %w", row.PMID, err)
		}
		if err := json.Unmarshal([]byte(affiliations), &row.Affiliations); err != nil {
			return nil, fmt.Errorf("decoding affiliations for %s: %w", row.PMID, err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
