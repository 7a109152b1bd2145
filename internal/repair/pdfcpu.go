// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfcpuStrategy parses a PDF with pdfcpu and re-serializes the optimized
// context. Strict mode accepts only well-formed files; relaxed mode
// tolerates the xref and trailer damage pdfcpu knows how to work around,
// which is where most real repairs happen.
type pdfcpuStrategy struct {
	name   string
	strict bool
}

func (s *pdfcpuStrategy) Name() string { return s.name }

func (s *pdfcpuStrategy) Repair(path string) (doc *Document, err error) {
	// pdfcpu can panic on badly mangled xref tables; keep that inside the
	// strategy boundary.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	if s.strict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	// Classic xref and uncompressed dicts keep the Info dict and trailer in
	// plain text, where normalize can reach the wall-clock fields pdfcpu
	// stamps on every write.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(src), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("pdfcpu write: %w", err)
	}

	data := normalize(buf.Bytes(), src, ctx.Encrypt != nil)
	return &Document{Data: data, Pages: ctx.PageCount}, nil
}

// Probe reports the page count of a PDF under relaxed validation, without
// writing anything. Used by the inspect command.
func Probe(path string) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}
