// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfmend CLI, a batch repair tool
// for malformed PDF files. The repair subcommand scans a directory tree,
// runs an ordered chain of repair strategies per file, writes repaired
// copies next to the originals, and reports every outcome.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfmend CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmend",
	Short: "Batch repair of malformed PDF files",
	Long: `pdfmend recursively scans a directory tree for PDF files and attempts to
repair each one through an ordered chain of strategies: a strict parse, a
relaxed parse with structure optimization, and a byte-level tail
reconstruction. Repaired documents are written as fixed-<name> next to the
originals; the originals are never modified. A plain-text report records
one block per processed file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmend.yaml or ~/.config/pdfmend/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmend")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmend"))
		}
	}

	viper.SetEnvPrefix("PDFMEND")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
