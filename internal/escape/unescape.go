// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode"
	"unicode/utf8"

	"go4.org/mem"
)

// namedRefs are the named character references Unescape recognizes, the
// named forms of the characters Escape replaces.
var namedRefs = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

// Unescape decodes the character references in src, and reports whether any
// reference was decoded. If not, the slice is nil and the caller should
// continue to use src, which is unmodified.
//
// Unescape recognizes the named references for the characters Escape
// replaces, along with decimal and hexadecimal numeric references. An
// ampersand that does not begin a well-formed reference is left intact.
func Unescape(src mem.RO) ([]byte, bool) {
	i := mem.IndexByte(src, '&')
	if i < 0 {
		return nil, false
	}

	dec := make([]byte, 0, src.Len())
	var changed bool
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i)

		if r, n, ok := decodeRef(src); ok {
			var buf [utf8.UTFMax]byte
			k := utf8.EncodeRune(buf[:], r)
			dec = append(dec, buf[:k]...)
			src = src.SliceFrom(n)
			changed = true
		} else {
			dec = append(dec, '&')
			src = src.SliceFrom(1)
		}

		i = mem.IndexByte(src, '&')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	if !changed {
		return nil, false
	}
	return dec, true
}

// decodeRef decodes a character reference at the front of src, which begins
// with '&'. It returns the decoded rune and the length of the reference
// including the ampersand and semicolon, or ok == false if src does not
// begin with a recognized reference.
func decodeRef(src mem.RO) (r rune, n int, ok bool) {
	if src.Len() >= 4 && src.At(1) == '#' {
		return decodeNumRef(src)
	}
	for name, r := range namedRefs {
		if matchRef(src, name) {
			return r, len(name) + 2, true
		}
	}
	return 0, 0, false
}

// matchRef reports whether src begins with "&" + name + ";".
func matchRef(src mem.RO, name string) bool {
	if src.Len() < len(name)+2 || src.At(len(name)+1) != ';' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if src.At(i+1) != name[i] {
			return false
		}
	}
	return true
}

// decodeNumRef decodes a numeric character reference, "&#" followed by
// decimal digits or "&#x" followed by hexadecimal digits, ending at ";".
func decodeNumRef(src mem.RO) (rune, int, bool) {
	pos, base := 2, int32(10)
	if b := src.At(2); b == 'x' || b == 'X' {
		pos, base = 3, 16
	}

	var v rune
	start := pos
	for ; pos < src.Len(); pos++ {
		b := src.At(pos)
		if b == ';' {
			if pos == start {
				return 0, 0, false // no digits
			}
			return v, pos + 1, true
		}
		d := digit(b)
		if d < 0 || d >= base {
			return 0, 0, false
		}
		v = v*base + d
		if v > unicode.MaxRune {
			return 0, 0, false
		}
	}
	return 0, 0, false // unterminated
}

func digit(b byte) rune {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0')
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return rune(b - 'A' + 10)
	}
	return -1
}
