// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfmend/pkg/types"
)

// SummaryFile is the on-disk YAML representation of a run: parameters,
// per-file outcomes, and totals. It exists for downstream tooling; the
// plain-text report stays the canonical human-readable artifact.
type SummaryFile struct {
	Run    RunParams      `yaml:"run"`
	Files  []types.Record `yaml:"files"`
	Totals RunTotals      `yaml:"totals"`
}

// RunParams stores the run parameters in serializable form.
type RunParams struct {
	Root      string `yaml:"root"`
	StartedAt string `yaml:"started_at"`
}

// RunTotals stores the outcome counters.
type RunTotals struct {
	Repaired int `yaml:"repaired"`
	Skipped  int `yaml:"skipped"`
	Failed   int `yaml:"failed"`
	Total    int `yaml:"total"`
}

// WriteSummary saves the run summary and all records to a YAML file.
func WriteSummary(path string, summary types.RunSummary, records []types.Record) error {
	sf := SummaryFile{
		Run: RunParams{
			Root:      summary.Root,
			StartedAt: summary.StartedAt.UTC().Format(time.RFC3339),
		},
		Files: records,
		Totals: RunTotals{
			Repaired: summary.Repaired,
			Skipped:  summary.Skipped,
			Failed:   summary.Failed,
			Total:    summary.Total(),
		},
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
