// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writePDF creates a file under a fresh temp dir and returns its path.
func writePDF(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReconstruct_TrimsTrailingGarbage(t *testing.T) {
	body := []byte("%PDF-1.4\n1 0 obj\nendobj\n%%EOF")
	path := writePDF(t, "trailing.pdf", append(append([]byte{}, body...), []byte("\nGARBAGE APPENDED BY SOMETHING")...))

	doc, err := reconstructStrategy{}.Repair(path)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	want := append(append([]byte{}, body...), '\n')
	if !bytes.Equal(doc.Data, want) {
		t.Errorf("doc = %q, want %q", doc.Data, want)
	}
}

func TestReconstruct_TrimsLeadingJunk(t *testing.T) {
	path := writePDF(t, "leading.pdf", []byte("HTTP noise before the header %PDF-1.7\ncontent\n%%EOF\ntail"))

	doc, err := reconstructStrategy{}.Repair(path)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-1.7")) {
		t.Errorf("output does not start at the header: %q", doc.Data)
	}
	if !bytes.HasSuffix(doc.Data, []byte("%%EOF\n")) {
		t.Errorf("output does not end at the EOF marker: %q", doc.Data)
	}
}

func TestReconstruct_Deterministic(t *testing.T) {
	raw := []byte("junk%PDF-1.5\nstuff\n%%EOF more junk %%EOF trailing")
	first := writePDF(t, "a.pdf", raw)
	second := writePDF(t, "b.pdf", raw)

	docA, err := reconstructStrategy{}.Repair(first)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	docB, err := reconstructStrategy{}.Repair(second)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if !bytes.Equal(docA.Data, docB.Data) {
		t.Error("same input bytes produced different outputs")
	}
}

func TestReconstruct_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"no header", []byte("plain text, nothing pdf about it %%EOF")},
		{"no eof marker", []byte("%PDF-1.4\ncontent without terminator")},
		{"nothing to trim", []byte("%PDF-1.4\ncontent\n%%EOF\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePDF(t, "in.pdf", tt.content)
			if _, err := (reconstructStrategy{}).Repair(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// The last %%EOF wins: markers inside the kept region stay untouched.
func TestReconstruct_UsesLastEOF(t *testing.T) {
	path := writePDF(t, "multi.pdf", []byte("%PDF-1.6\nfirst update\n%%EOF\nsecond update\n%%EOF\njunk"))

	doc, err := reconstructStrategy{}.Repair(path)
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	want := []byte("%PDF-1.6\nfirst update\n%%EOF\nsecond update\n%%EOF\n")
	if !bytes.Equal(doc.Data, want) {
		t.Errorf("doc = %q, want %q", doc.Data, want)
	}
}
