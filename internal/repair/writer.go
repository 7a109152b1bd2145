// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdfmend/internal/discover"
)

// OutputPath derives the repaired-output path for an original:
// <dir>/fixed-<basename>.
func OutputPath(original string) string {
	dir, base := filepath.Split(original)
	return filepath.Join(dir, discover.OutputPrefix+base)
}

// WriteRepaired writes the repaired document next to the original as
// fixed-<basename>, overwriting any previous output so that reruns are
// idempotent. The original file is never touched.
func WriteRepaired(original string, doc *Document) (string, error) {
	out := OutputPath(original)
	if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}
