// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFile creates a file with parents, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"), "x")
	writeFile(t, filepath.Join(root, "B.PDF"), "x")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "fixed-a.pdf"), "x")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.Pdf"), "x")
	writeFile(t, filepath.Join(root, "sub", "readme.md"), "x")

	var warn bytes.Buffer
	files, err := Discover(root, &warn)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(root, "B.PDF"),
		filepath.Join(root, "a.pdf"),
		filepath.Join(root, "sub", "deep", "c.Pdf"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}
}

func TestDiscover_EmptyTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "readme.md"), "x")

	var warn bytes.Buffer
	files, err := Discover(root, &warn)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	var warn bytes.Buffer
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), &warn); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestDiscover_RootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "x.pdf")
	writeFile(t, path, "x")

	var warn bytes.Buffer
	if _, err := Discover(path, &warn); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.pdf", true},
		{"a.PDF", true},
		{"a.Pdf", true},
		{"a.pdf.txt", false},
		{"apdf", false},
		{"a.pdfx", false},
	}
	for _, tt := range tests {
		if got := IsPDF(tt.name); got != tt.want {
			t.Errorf("IsPDF(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
