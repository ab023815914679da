// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package markup

import (
	"fmt"
)

// Markup is a string of text that is safe to embed in HTML output without
// further escaping. Functions in this package never re-escape a Markup
// value: wrapping text in Markup asserts that any markup it contains is
// intentional.
type Markup string

// An HTMLer renders itself as HTML. A type implementing HTMLer is trusted
// to produce markup that is already safe; Escape returns its output as-is,
// without validating or re-escaping it.
type HTMLer interface {
	HTML() Markup
}

// HTML satisfies the HTMLer interface, returning m unmodified.
func (m Markup) HTML() Markup { return m }

// String returns the text of m without modification.
func (m Markup) String() string { return string(m) }

// Unescape returns the text of m with character references decoded, as by
// UnescapeString.
func (m Markup) Unescape() string { return UnescapeString(string(m)) }

// Escape converts v into Markup, escaping the characters "&", "<", ">",
// '"', and '\'' so that the result can be embedded in HTML text or
// attribute values. How v is converted depends on its type, checked in
// order:
//
// If v is already a Markup value, it is returned unchanged.
//
// If v is a bool, an integer, a floating-point value, or nil, its standard
// formatted value is wrapped as Markup without escaping, since it cannot
// contain markup. A nil value renders as the empty string.
//
// If v implements the HTMLer interface, the result of its HTML method is
// returned without further escaping.
//
// Otherwise, v is converted to a string, a string or []byte being used
// directly and any other value formatted as by fmt.Sprint, and the result
// is escaped.
func Escape(v any) Markup { return escapeValue(v, true) }

// EscapeText is as Escape, but leaves quotation marks unescaped. The
// result is safe for HTML text content, but not for quoted attribute
// values.
func EscapeText(v any) Markup { return escapeValue(v, false) }

func escapeValue(v any, quotes bool) Markup {
	switch t := v.(type) {
	case Markup:
		return t
	case nil:
		return ""
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return Markup(fmt.Sprint(t))
	case HTMLer:
		return t.HTML()
	}
	return Markup(EscapeString(stringify(v), quotes))
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return fmt.Sprint(v)
}
