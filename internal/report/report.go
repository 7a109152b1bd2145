// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report accumulates per-file repair records and serializes them:
// a plain-text block report, an optional YAML run summary, and an optional
// SQLite run history.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pdfmend/pkg/types"
)

// Log is the append-only in-memory report for one run. Records are held in
// insertion order and written once, at flush time.
type Log struct {
	records []types.Record
}

// NewLog returns an empty report log.
func NewLog() *Log {
	return &Log{}
}

// Record appends one entry. Entries are never mutated after insertion.
func (l *Log) Record(rec types.Record) {
	l.records = append(l.records, rec)
}

// Records returns the entries in insertion order.
func (l *Log) Records() []types.Record {
	return l.records
}

// Flush writes all records to path as UTF-8 plain text, one block per file,
// blocks separated by a blank line, overwriting any prior report:
//
//	file: <path>
//	status: <success|skipped|failed>
//	strategy: <strategy-name|none>
//	notes: <free text>   (success and skipped)
//	error: <free text>   (failed)
func (l *Log) Flush(path string) error {
	var b strings.Builder
	for i, r := range l.records {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "file: %s\n", r.Path)
		fmt.Fprintf(&b, "status: %s\n", r.Status)
		strategy := r.Strategy
		if strategy == "" {
			strategy = "none"
		}
		fmt.Fprintf(&b, "strategy: %s\n", strategy)
		if r.Notes != "" {
			fmt.Fprintf(&b, "notes: %s\n", r.Notes)
		}
		if r.Error != "" {
			fmt.Fprintf(&b, "error: %s\n", r.Error)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
