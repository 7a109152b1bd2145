// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"regexp"
)

// canonicalDate is the fixed timestamp stamped into repaired output. It has
// the exact shape and length of the dates pdfcpu writes, so substitution
// never shifts object offsets recorded in the xref table.
const canonicalDate = "D:19700101000000+00'00'"

var (
	infoDateRe = regexp.MustCompile(`/(CreationDate|ModDate)\(D:[^)]*\)`)
	fileIDRe   = regexp.MustCompile(`/ID\s*\[\s*<[0-9A-Fa-f]+>\s*<[0-9A-Fa-f]+>\s*\]`)
	hexRunRe   = regexp.MustCompile(`<[0-9A-Fa-f]+>`)
)

// normalize rewrites the fields pdfcpu stamps with the wall clock (the
// Info dict CreationDate/ModDate and the trailer file ID) so that repaired
// output bytes are a pure function of input bytes and reruns stay
// byte-identical. Every substitution preserves length; offsets stay valid.
//
// The trailer ID is left alone for encrypted documents, where it feeds key
// derivation and the already-encrypted strings depend on it.
func normalize(out, src []byte, encrypted bool) []byte {
	out = infoDateRe.ReplaceAllFunc(out, func(m []byte) []byte {
		i := bytes.IndexByte(m, '(')
		if len(m)-i-2 != len(canonicalDate) {
			return m
		}
		repl := make([]byte, 0, len(m))
		repl = append(repl, m[:i+1]...)
		repl = append(repl, canonicalDate...)
		return append(repl, ')')
	})

	if encrypted {
		return out
	}

	digest := md5.Sum(src)
	id := hex.EncodeToString(digest[:])
	return fileIDRe.ReplaceAllFunc(out, func(m []byte) []byte {
		return hexRunRe.ReplaceAllFunc(m, func(run []byte) []byte {
			repl := make([]byte, len(run))
			repl[0], repl[len(repl)-1] = '<', '>'
			for i := 1; i < len(repl)-1; i++ {
				repl[i] = id[(i-1)%len(id)]
			}
			return repl
		})
	})
}
