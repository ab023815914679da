// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package markup

import (
	"github.com/creachadair/markup/internal/escape"

	"go4.org/mem"
)

// EscapeString encodes the characters "&", "<", and ">" in s as character
// references. When quotes is true, '"' and '\'' are also encoded;
// otherwise they are copied through as ordinary text.
//
// If s contains no characters to encode, EscapeString returns s unchanged
// without copying it.
func EscapeString(s string, quotes bool) string {
	if buf, ok := escape.Escape(mem.S(s), quotes); ok {
		return string(buf)
	}
	return s
}

// UnescapeString decodes character references in s. It recognizes the
// named references for the characters EscapeString encodes ("&amp;",
// "&lt;", "&gt;", "&quot;", "&apos;") and decimal and hexadecimal numeric
// references. An ampersand that does not begin a well-formed reference is
// copied through unchanged.
//
// If s contains no references to decode, UnescapeString returns s
// unchanged without copying it.
func UnescapeString(s string) string {
	if buf, ok := escape.Unescape(mem.S(s)); ok {
		return string(buf)
	}
	return s
}
