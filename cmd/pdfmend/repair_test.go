package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRepairTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "repair"}
	addRepairFlags(cmd)
	return cmd
}

// Flags must override config-file values even when the flag is set to its
// default value explicitly.
func TestRepairConfig_ExplicitFlagOverridesConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("repair.report", "from-config.log")
	viper.Set("repair.history_db", "from-config.db")
	viper.Set("repair.skip_existing", true)

	cmd := newRepairTestCmd()
	if err := cmd.Flags().Set("report", defaultReport); err != nil {
		t.Fatal(err)
	}

	cfg := repairConfig(cmd, nil)
	if cfg.ReportPath != defaultReport {
		t.Errorf("report = %q, want the explicit flag value %q", cfg.ReportPath, defaultReport)
	}
	// Untouched flags leave the config-file values in place.
	if cfg.HistoryDB != "from-config.db" {
		t.Errorf("history db = %q, want config value", cfg.HistoryDB)
	}
	if !cfg.SkipExisting {
		t.Error("skip_existing from config was dropped")
	}
}

func TestRepairConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg := repairConfig(newRepairTestCmd(), nil)
	if cfg.Root != "." {
		t.Errorf("root = %q, want %q", cfg.Root, ".")
	}
	if cfg.ReportPath != defaultReport {
		t.Errorf("report = %q, want %q", cfg.ReportPath, defaultReport)
	}
	if cfg.SkipExisting {
		t.Error("skip-existing should default to false")
	}
}

func TestRepairConfig_RootArgument(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg := repairConfig(newRepairTestCmd(), []string{"/some/tree"})
	if cfg.Root != "/some/tree" {
		t.Errorf("root = %q, want %q", cfg.Root, "/some/tree")
	}
}
