// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"bytes"
	"fmt"
	"os"
)

const (
	pdfHeader = "%PDF-"
	pdfEOF    = "%%EOF"

	// headerWindow bounds how far into the file the %PDF- header may sit.
	// Leading junk beyond this is not something tail reconstruction can fix.
	headerWindow = 1024
)

// reconstructStrategy is the last-resort byte-level repair: it strips
// garbage before the %PDF- header and truncates everything after the last
// %%EOF marker. It performs no structural parsing, so it only helps with
// files damaged by prepended or appended junk (a common artifact of
// interrupted downloads and naive concatenation). Same input bytes always
// produce the same output bytes.
type reconstructStrategy struct{}

func (reconstructStrategy) Name() string { return "reconstruct-tail" }

func (reconstructStrategy) Repair(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	window := data
	if len(window) > headerWindow {
		window = window[:headerWindow]
	}
	start := bytes.Index(window, []byte(pdfHeader))
	if start < 0 {
		return nil, fmt.Errorf("no %s header within the first %d bytes", pdfHeader, headerWindow)
	}

	end := bytes.LastIndex(data, []byte(pdfEOF))
	if end < start {
		return nil, fmt.Errorf("no %s marker after the header", pdfEOF)
	}

	fixed := make([]byte, 0, end+len(pdfEOF)-start+1)
	fixed = append(fixed, data[start:end+len(pdfEOF)]...)
	fixed = append(fixed, '\n')

	if bytes.Equal(fixed, data) {
		return nil, fmt.Errorf("nothing to trim and document still unparseable")
	}

	return &Document{Data: fixed}, nil
}
