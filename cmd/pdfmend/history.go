package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmend/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past repair runs from the history database",
	Long: `History prints runs previously recorded with repair --history-db, most
recent first. Use --files to include the per-file records of each run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("history-db", "", "SQLite history database path")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("files", false, "show per-file records for each run")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("repair.history_db")
	}
	if dbPath == "" {
		return fmt.Errorf("history database required: pass --history-db or set repair.history_db")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("history database %s: %w", dbPath, err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	showFiles, _ := cmd.Flags().GetBool("files")

	h, err := report.OpenHistory(dbPath)
	if err != nil {
		return err
	}
	defer h.Close()

	ctx := context.Background()
	runs, err := h.Runs(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("run %d  %s  root=%s  repaired=%d skipped=%d failed=%d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Root,
			r.Repaired, r.Skipped, r.Failed)
		if !showFiles {
			continue
		}
		records, err := h.Files(ctx, r.ID)
		if err != nil {
			return err
		}
		for _, rec := range records {
			detail := rec.Notes
			if detail == "" {
				detail = rec.Error
			}
			fmt.Printf("    %-8s %s  %s\n", rec.Status, rec.Path, detail)
		}
	}
	return nil
}
