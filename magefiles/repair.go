//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Repair builds the binary and runs it against the current directory.
func Repair() error {
	mg.Deps(Build)
	cmd := exec.Command(filepath.Join(binDir, binName), "repair")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
