// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package markup implements HTML escaping of arbitrary values.
//
// # Escaping
//
// The Escape function converts a value of any type into a Markup string,
// a string whose contents are safe to embed in HTML output:
//
//	markup.Escape(`<b>"hi"</b>`)  // "&lt;b&gt;&#34;hi&#34;&lt;/b&gt;"
//
// Values that cannot carry markup are passed through with minimal work: a
// Markup value is returned unchanged, and numbers, Booleans, and nil are
// wrapped directly in their standard formatted form. A type can take over
// its own rendering by implementing the HTMLer interface, in which case
// Escape returns its output without further escaping. All other values are
// reduced to text and escaped.
//
// Escaping a string that needs no changes does not allocate; the input is
// returned as-is. Otherwise the escaped result is built with a single
// allocation of exactly the final size.
//
// # Quotation marks
//
// Escape encodes quotation marks, making its output safe for quoted
// attribute values as well as for text content. Use EscapeText to leave
// '"' and '\'' alone where only text content is being produced:
//
//	markup.EscapeText(`<b>"hi"</b>`)  // `&lt;b&gt;"hi"&lt;/b&gt;`
//
// The EscapeString and UnescapeString functions expose the underlying
// string transformations directly, without the type-based dispatch.
package markup
