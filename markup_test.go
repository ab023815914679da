// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package markup_test

import (
	"testing"

	"github.com/creachadair/markup"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

// tagName is a fmt.Stringer whose string form contains metacharacters.
type tagName struct{ name string }

func (t tagName) String() string { return "<" + t.name + ">" }

// trusted renders itself as HTML.
type trusted struct{ text string }

func (t trusted) HTML() markup.Markup { return markup.Markup("<i>" + t.text + "</i>") }

// failer panics when asked to render itself.
type failer struct{}

func (failer) HTML() markup.Markup { panic("render failed") }

func TestEscape(t *testing.T) {
	tests := []struct {
		desc  string
		input any
		want  string
	}{
		{"Empty", "", ""},
		{"String", `<b>"hi" & 'bye'</b>`, "&lt;b&gt;&#34;hi&#34; &amp; &#39;bye&#39;&lt;/b&gt;"},
		{"Bytes", []byte("a < b"), "a &lt; b"},

		// A Markup value is returned unchanged, not escaped again.
		{"Markup", markup.Markup(`<a href="/">top</a>`), `<a href="/">top</a>`},

		// Values that cannot carry markup are wrapped without escaping.
		{"Nil", nil, ""},
		{"True", true, "true"},
		{"False", false, "false"},
		{"Int", 42, "42"},
		{"Negative", -17, "-17"},
		{"Uint", uint16(9), "9"},
		{"Float", 3.14, "3.14"},

		// A self-rendering value is trusted as-is.
		{"HTMLer", trusted{"trusted"}, "<i>trusted</i>"},
		{"HTMLerMarkup", trusted{"<script>"}, "<i><script></i>"},

		// Other types are formatted, then escaped.
		{"Stringer", tagName{"div"}, "&lt;div&gt;"},
		{"Slice", []int{1, 2}, "[1 2]"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := markup.Escape(test.input)
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("Escape(%+v): (-want, +got)\n%s", test.input, diff)
			}
		})
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		desc  string
		input any
		want  string
	}{
		// Quotation marks are ordinary text, the rest is still escaped.
		{"Quotes", `<b>"hi"</b>`, `&lt;b&gt;"hi"&lt;/b&gt;`},
		{"Mixed", `'1' & "2"`, `'1' &amp; "2"`},

		// The rest of the dispatch is unaffected by the quote policy.
		{"Markup", markup.Markup(`"as-is"`), `"as-is"`},
		{"Int", 42, "42"},
		{"HTMLer", trusted{"ok"}, "<i>ok</i>"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := markup.EscapeText(test.input)
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("EscapeText(%+v): (-want, +got)\n%s", test.input, diff)
			}
		})
	}
}

// Escaping an already-escaped value must return it unchanged, to any depth.
func TestEscape_idempotent(t *testing.T) {
	m := markup.Escape(`x < y`)
	if string(m) != "x &lt; y" {
		t.Fatalf("Escape: got %#q, want %#q", string(m), "x &lt; y")
	}
	for i := 0; i < 3; i++ {
		if got := markup.Escape(m); got != m {
			t.Errorf("Escape(%#q): got %#q, want it unchanged", string(m), string(got))
		}
		m = markup.Escape(m)
	}
}

// A panic out of a self-renderer is not suppressed.
func TestEscape_renderPanic(t *testing.T) {
	mtest.MustPanic(t, func() { markup.Escape(failer{}) })
}

func TestMarkup(t *testing.T) {
	m := markup.Markup("&lt;tag&gt;")
	if got := m.String(); got != "&lt;tag&gt;" {
		t.Errorf("String: got %#q, want %#q", got, "&lt;tag&gt;")
	}
	if got := m.HTML(); got != m {
		t.Errorf("HTML: got %#q, want %#q", string(got), string(m))
	}
	if got, want := m.Unescape(), "<tag>"; got != want {
		t.Errorf("Unescape: got %#q, want %#q", got, want)
	}
}
