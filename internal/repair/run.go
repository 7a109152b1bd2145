// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pdfmend/pkg/types"
)

// Options configures a batch run.
type Options struct {
	// SkipExisting records a file as skipped when its fixed- output already
	// exists, instead of repairing and overwriting.
	SkipExisting bool
}

// BatchResult holds the outcome counters of a batch repair run.
type BatchResult struct {
	Repaired int
	Skipped  int
	Failed   int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Repaired + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed repair.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessFile runs the per-file state machine: pre-checks, then the strategy
// chain, then the output write. It always returns exactly one record and
// never aborts the caller; every failure is captured in the record.
func ProcessFile(c *Chain, path string, opts Options, w io.Writer) types.Record {
	rec := types.Record{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		rec.Status = types.StatusFailed
		rec.Error = err.Error()
		fmt.Fprintf(w, "failed:   %s (%v)\n", path, err)
		return rec
	}
	if info.Size() == 0 {
		rec.Status = types.StatusFailed
		rec.Error = "empty file"
		fmt.Fprintf(w, "failed:   %s (empty file)\n", path)
		return rec
	}

	// Readability pre-check: a permission error here means no strategy is
	// attempted at all.
	f, err := os.Open(path)
	if err != nil {
		rec.Status = types.StatusFailed
		rec.Error = err.Error()
		fmt.Fprintf(w, "failed:   %s (%v)\n", path, err)
		return rec
	}
	f.Close()

	if opts.SkipExisting {
		if _, err := os.Stat(OutputPath(path)); err == nil {
			rec.Status = types.StatusSkipped
			rec.Notes = "output already exists"
			fmt.Fprintf(w, "skipped:  %s (output already exists)\n", path)
			return rec
		}
	}

	doc, strategy, err := c.Attempt(path)
	if err != nil {
		rec.Status = types.StatusFailed
		rec.Error = err.Error()
		fmt.Fprintf(w, "failed:   %s (%v)\n", path, err)
		return rec
	}

	out, err := WriteRepaired(path, doc)
	if err != nil {
		// Repair itself succeeded, but an unwritable output still fails
		// the file.
		rec.Status = types.StatusFailed
		rec.Strategy = strategy
		rec.Error = err.Error()
		fmt.Fprintf(w, "failed:   %s (%v)\n", path, err)
		return rec
	}

	rec.Status = types.StatusSuccess
	rec.Strategy = strategy
	if doc.Pages > 0 {
		rec.Notes = fmt.Sprintf("pages: %d, wrote %s", doc.Pages, out)
	} else {
		rec.Notes = fmt.Sprintf("wrote %s", out)
	}
	fmt.Fprintf(w, "repaired: %s (%s)\n", path, strategy)
	return rec
}

// RunBatch processes files in discovery order, printing per-file progress to
// w and a summary line at the end. One record per file, no retries, and a
// single file's failure never stops the batch.
func RunBatch(c *Chain, files []string, opts Options, w io.Writer) ([]types.Record, BatchResult) {
	records := make([]types.Record, 0, len(files))
	var result BatchResult
	for _, path := range files {
		rec := ProcessFile(c, path, opts, w)
		records = append(records, rec)
		switch rec.Status {
		case types.StatusSuccess:
			result.Repaired++
		case types.StatusSkipped:
			result.Skipped++
		case types.StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d repaired, %d skipped, %d failed (total: %d)\n",
		result.Repaired, result.Skipped, result.Failed, result.Total())
	return records, result
}
