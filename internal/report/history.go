// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfmend/pkg/types"
)

// History is an append-only SQLite log of past repair runs. It is an audit
// trail only; runs never read it to decide what to process.
type History struct {
	db *sql.DB
}

// OpenHistory opens or creates the history database at path, creating the
// schema if it does not exist.
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	h := &History{db: db}
	if err := h.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return h, nil
}

// Close releases the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			root TEXT NOT NULL,
			started_at TEXT NOT NULL,
			repaired INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			path TEXT NOT NULL,
			status TEXT NOT NULL,
			strategy TEXT,
			message TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := h.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun appends one run and its per-file records in a single transaction.
func (h *History) RecordRun(ctx context.Context, summary types.RunSummary, records []types.Record) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (root, started_at, repaired, skipped, failed) VALUES (?, ?, ?, ?, ?)`,
		summary.Root, summary.StartedAt.UTC().Format(time.RFC3339),
		summary.Repaired, summary.Skipped, summary.Failed)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}

	for _, rec := range records {
		message := rec.Notes
		if rec.Status == types.StatusFailed {
			message = rec.Error
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, status, strategy, message) VALUES (?, ?, ?, ?, ?)`,
			runID, rec.Path, string(rec.Status), rec.Strategy, message); err != nil {
			return fmt.Errorf("inserting record for %s: %w", rec.Path, err)
		}
	}

	return tx.Commit()
}

// Run is one row of the runs table.
type Run struct {
	ID        int64
	Root      string
	StartedAt time.Time
	Repaired  int
	Skipped   int
	Failed    int
}

// Runs returns up to limit past runs, most recent first.
func (h *History) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, root, started_at, repaired, skipped, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Root, &started, &r.Repaired, &r.Skipped, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Files returns the per-file records of one run, in insertion order.
func (h *History) Files(ctx context.Context, runID int64) ([]types.Record, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT path, status, strategy, message FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var rec types.Record
		var status, strategy, message sql.NullString
		if err := rows.Scan(&rec.Path, &status, &strategy, &message); err != nil {
			return nil, fmt.Errorf("scanning run file: %w", err)
		}
		rec.Status = types.Status(status.String)
		rec.Strategy = strategy.String
		if rec.Status == types.StatusFailed {
			rec.Error = message.String
		} else {
			rec.Notes = message.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
