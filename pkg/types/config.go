// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RepairConfig holds settings for a repair run.
type RepairConfig struct {
	// Root is the directory tree to scan for PDF files (default ".").
	Root string `json:"root" yaml:"root"`

	// ReportPath is the plain-text report destination. Relative paths are
	// resolved against Root so the report lands next to the scanned files
	// (default "repair_report.log").
	ReportPath string `json:"report" yaml:"report"`

	// SummaryPath, when set, is the destination for a YAML run summary.
	SummaryPath string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// HistoryDB, when set, is the path of a SQLite database that the run
	// outcome is appended to.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// SkipExisting records a file as skipped when its fixed- output is
	// already present, instead of overwriting it.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`
}
