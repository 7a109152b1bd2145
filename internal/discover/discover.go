// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover finds PDF files under a directory tree.
package discover

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OutputPrefix marks repaired output files. Discovery excludes them so that
// a rerun never treats this tool's own artifacts as inputs.
const OutputPrefix = "fixed-"

// Discover walks root and returns every regular file whose name ends in
// ".pdf" (case-insensitive), in lexical walk order. Unreadable subtrees are
// skipped with a warning line to warn; they never abort the walk. The only
// error condition is a root that does not exist or is not a directory.
func Discover(root string, warn io.Writer) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsPDF(d.Name()) {
			return nil
		}
		if strings.HasPrefix(d.Name(), OutputPrefix) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// IsPDF reports whether name carries the PDF extension, case-insensitive.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
