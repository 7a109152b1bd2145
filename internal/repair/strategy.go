// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repair implements the ordered PDF repair strategy chain, the
// output writer, and the per-file batch orchestrator.
package repair

import (
	"fmt"
	"strings"
)

// Document is a reconstructed PDF held in memory, ready to be written.
type Document struct {
	// Data is the full serialized PDF.
	Data []byte

	// Pages is the page count of the reconstructed document, 0 when the
	// producing strategy cannot determine it.
	Pages int
}

// Strategy is one named, self-contained repair attempt. Repair opens the
// file read-only, parses and rebuilds the document, and returns the result
// or an error. Library errors never escape this boundary as panics.
type Strategy interface {
	Name() string
	Repair(path string) (*Document, error)
}

// Chain tries strategies in fixed priority order, stopping at the first
// success.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain over the given strategies, tried in argument order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// DefaultChain is the production order: strict pdfcpu parse first (an
// already-valid file succeeds immediately), relaxed parse with optimization
// second, byte-level tail reconstruction last.
func DefaultChain() *Chain {
	return NewChain(
		&pdfcpuStrategy{name: "strict-parse", strict: true},
		&pdfcpuStrategy{name: "relaxed-parse", strict: false},
		reconstructStrategy{},
	)
}

// Attempt runs the chain against path. It returns the repaired document and
// the name of the strategy that produced it. When every strategy fails, the
// returned error concatenates each strategy's failure as "name: message"
// joined by "; " — all of them, not just the last.
func (c *Chain) Attempt(path string) (*Document, string, error) {
	var failures []string
	for _, s := range c.strategies {
		doc, err := s.Repair(path)
		if err == nil {
			return doc, s.Name(), nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", s.Name(), err))
	}
	return nil, "", fmt.Errorf("all strategies failed: %s", strings.Join(failures, "; "))
}
