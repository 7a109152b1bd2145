// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds shared record and configuration structs for pdfmend.
package types

import "time"

// Status is the terminal outcome of processing one file.
type Status string

const (
	// StatusSuccess means a strategy repaired the file and the output was written.
	StatusSuccess Status = "success"

	// StatusSkipped means a pre-check decided not to attempt the file
	// (e.g. its fixed- output already exists and --skip-existing is set).
	StatusSkipped Status = "skipped"

	// StatusFailed means the file could not be repaired: empty, unreadable,
	// every strategy failed, or the output could not be written.
	StatusFailed Status = "failed"
)

// Record is the report entry for one processed file. Records are created
// once per file, never mutated, and serialized in discovery order.
type Record struct {
	// Path is the file as discovered (relative to the scan root or absolute,
	// exactly as the walker produced it).
	Path string `json:"path" yaml:"path"`

	// Status is the terminal state for this file.
	Status Status `json:"status" yaml:"status"`

	// Strategy names the strategy that produced the repaired document.
	// Empty when no strategy succeeded or none was attempted.
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`

	// Notes carries free-text detail for successful or skipped files
	// (page count, output path, skip reason).
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Error carries the failure message for failed files.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunSummary aggregates one repair run for the YAML summary file and the
// history database.
type RunSummary struct {
	// Root is the directory tree that was scanned.
	Root string `json:"root" yaml:"root"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Repaired, Skipped and Failed count per-file outcomes.
	Repaired int `json:"repaired" yaml:"repaired"`
	Skipped  int `json:"skipped" yaml:"skipped"`
	Failed   int `json:"failed" yaml:"failed"`
}

// Total returns the number of files processed in the run.
func (s RunSummary) Total() int {
	return s.Repaired + s.Skipped + s.Failed
}
