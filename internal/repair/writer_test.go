// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("some", "dir", "doc.pdf"))
	want := filepath.Join("some", "dir", "fixed-doc.pdf")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestWriteRepaired(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(original, []byte("original bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := WriteRepaired(original, &Document{Data: []byte("repaired bytes")})
	if err != nil {
		t.Fatalf("WriteRepaired: %v", err)
	}
	if out != filepath.Join(dir, "fixed-doc.pdf") {
		t.Errorf("output path = %q", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "repaired bytes" {
		t.Errorf("output content = %q", data)
	}

	// The original is never touched.
	orig, err := os.ReadFile(original)
	if err != nil {
		t.Fatal(err)
	}
	if string(orig) != "original bytes" {
		t.Errorf("original modified: %q", orig)
	}
}

func TestWriteRepaired_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(original, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dir, "fixed-doc.pdf")
	if err := os.WriteFile(stale, []byte("stale previous output"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteRepaired(original, &Document{Data: []byte("fresh")}); err != nil {
		t.Fatalf("WriteRepaired: %v", err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh" {
		t.Errorf("output = %q, want overwrite with %q", data, "fresh")
	}
}

func TestWriteRepaired_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone", "doc.pdf")
	if _, err := WriteRepaired(missing, &Document{Data: []byte("x")}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
