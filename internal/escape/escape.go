// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape handles encoding and decoding of HTML character
// references.
package escape

import (
	"go4.org/mem"
)

// tableSize bounds the characters subject to replacement. Only code points
// below tableSize are ever substitution candidates; the highest character
// replaced is '>' (0x3E).
const tableSize = 63

// repl maps each escaped character to its replacement reference.
var repl = [tableSize]string{
	'"':  "&#34;",
	'\'': "&#39;",
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
}

// deltaLen is the number of bytes each replacement adds over the single
// character it replaces. Entries for unreplaced characters are zero.
var deltaLen [tableSize]int

func init() {
	for c, r := range repl {
		if r != "" {
			deltaLen[c] = len(r) - 1
		}
	}
}

// Escape encodes the characters "&", "<", ">", and, when quotes is true,
// '"' and '\'' in src as character references, and reports whether any
// substitution was made. If not, the slice is nil and the caller should
// continue to use src, which is unmodified.
//
// The output is built in a single allocation: a first pass over src counts
// the substitutions and the extra length they need, a second pass fills a
// buffer of exactly the final size, bulk-copying the unescaped runs between
// substitutions.
func Escape(src mem.RO, quotes bool) ([]byte, bool) {
	var extra, nsub int
	for t := src; t.Len() != 0; {
		r, n := mem.DecodeRune(t)
		if d := delta(r, quotes); d != 0 {
			extra += d
			nsub++
		}
		t = t.SliceFrom(n)
	}
	if nsub == 0 {
		return nil, false
	}

	buf := make([]byte, 0, src.Len()+extra)
	for ; nsub > 0; nsub-- {
		// Find the next substitution. Bytes that are part of a multibyte
		// encoding never match, since the table covers only low ASCII, so
		// scanning bytes here cannot split a rune.
		i := 0
		for delta(rune(src.At(i)), quotes) == 0 {
			i++
		}
		buf = mem.Append(buf, src.SliceTo(i))
		buf = append(buf, repl[src.At(i)]...)
		src = src.SliceFrom(i + 1)
	}
	return mem.Append(buf, src), true
}

// delta reports the extra length needed to escape r, or 0 if r is not
// escaped under the given quote policy.
func delta(r rune, quotes bool) int {
	if r < 0 || r >= tableSize {
		return 0
	} else if !quotes && (r == '"' || r == '\'') {
		return 0
	}
	return deltaLen[r]
}
