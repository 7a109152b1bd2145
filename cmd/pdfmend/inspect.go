package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmend/internal/discover"
	"github.com/pdiddy/pdfmend/internal/repair"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [root]",
	Short: "List discovered PDFs and their validation state without repairing",
	Long: `Inspect performs a dry run: it walks the root directory like repair does,
probes each PDF under relaxed validation, and prints the page count or the
parse error. Nothing is repaired and nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	files, err := discover.Discover(root, os.Stderr)
	if err != nil {
		return err
	}

	valid := 0
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("%s: unreadable (%v)\n", path, err)
			continue
		}
		if info.Size() == 0 {
			fmt.Printf("%s: empty file\n", path)
			continue
		}
		pages, err := repair.Probe(path)
		if err != nil {
			fmt.Printf("%s: damaged (%v)\n", path, err)
			continue
		}
		fmt.Printf("%s: %d page(s), parseable\n", path, pages)
		valid++
	}

	fmt.Printf("\n%d PDF(s) found, %d parseable, %d candidates for repair\n",
		len(files), valid, len(files)-valid)
	return nil
}
