package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmend/internal/discover"
	"github.com/pdiddy/pdfmend/internal/repair"
	"github.com/pdiddy/pdfmend/internal/report"
	"github.com/pdiddy/pdfmend/pkg/types"
)

const defaultReport = "repair_report.log"

var repairCmd = &cobra.Command{
	Use:   "repair [root]",
	Short: "Scan a directory tree and repair every malformed PDF in it",
	Long: `Repair walks the root directory (default: current directory) for files
ending in .pdf, case-insensitive, and runs the strategy chain on each:
strict-parse, relaxed-parse, reconstruct-tail. The first strategy to
succeed wins; repaired documents are written as fixed-<name> beside the
originals.

Individual file failures never abort the run or affect the exit code; they
are recorded in the report. Only an invalid root directory is fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

func init() {
	addRepairFlags(repairCmd)
	rootCmd.AddCommand(repairCmd)
}

func addRepairFlags(cmd *cobra.Command) {
	cmd.Flags().String("report", defaultReport, "report file path (relative paths resolve against root)")
	cmd.Flags().String("summary", "", "also write a YAML run summary to this path")
	cmd.Flags().String("history-db", "", "append the run outcome to this SQLite database")
	cmd.Flags().Bool("skip-existing", false, "skip files whose fixed- output already exists")
}

// repairConfig merges the config file with command-line flags; flags win.
func repairConfig(cmd *cobra.Command, args []string) types.RepairConfig {
	cfg := types.RepairConfig{
		Root:         viper.GetString("repair.root"),
		ReportPath:   viper.GetString("repair.report"),
		SummaryPath:  viper.GetString("repair.summary"),
		HistoryDB:    viper.GetString("repair.history_db"),
		SkipExisting: viper.GetBool("repair.skip_existing"),
	}

	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cmd.Flags().Changed("report") || cfg.ReportPath == "" {
		cfg.ReportPath, _ = cmd.Flags().GetString("report")
	}
	if cmd.Flags().Changed("summary") {
		cfg.SummaryPath, _ = cmd.Flags().GetString("summary")
	}
	if cmd.Flags().Changed("history-db") {
		cfg.HistoryDB, _ = cmd.Flags().GetString("history-db")
	}
	if cmd.Flags().Changed("skip-existing") {
		cfg.SkipExisting, _ = cmd.Flags().GetBool("skip-existing")
	}
	return cfg
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg := repairConfig(cmd, args)
	started := time.Now()

	files, err := discover.Discover(cfg.Root, os.Stderr)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stdout, "No PDF files found under %s\n", cfg.Root)
	}

	chain := repair.DefaultChain()
	records, result := repair.RunBatch(chain, files, repair.Options{SkipExisting: cfg.SkipExisting}, os.Stdout)

	log := report.NewLog()
	for _, rec := range records {
		log.Record(rec)
	}

	reportPath := cfg.ReportPath
	if !filepath.IsAbs(reportPath) {
		reportPath = filepath.Join(cfg.Root, reportPath)
	}
	if err := log.Flush(reportPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Report written to %s\n", reportPath)

	summary := types.RunSummary{
		Root:      cfg.Root,
		StartedAt: started,
		Repaired:  result.Repaired,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	}

	if cfg.SummaryPath != "" {
		if err := report.WriteSummary(cfg.SummaryPath, summary, records); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	if cfg.HistoryDB != "" {
		if err := recordHistory(cfg.HistoryDB, summary, records); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	// Batch tool semantics: per-file failures are in the report, not the
	// exit code.
	return nil
}

func recordHistory(dbPath string, summary types.RunSummary, records []types.Record) error {
	h, err := report.OpenHistory(dbPath)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.RecordRun(context.Background(), summary, records)
}
