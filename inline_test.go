package md2docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestScanSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []inlineSpan
	}{
		{
			name: "star bold",
			line: "**bold**",
			want: []inlineSpan{{start: 0, end: 8, text: "bold", kind: spanBold}},
		},
		{
			name: "underscore bold",
			line: "__bold__",
			want: []inlineSpan{{start: 0, end: 8, text: "bold", kind: spanBold}},
		},
		{
			name: "star italic",
			line: "*italic*",
			want: []inlineSpan{{start: 0, end: 8, text: "italic", kind: spanItalic}},
		},
		{
			name: "underscore italic",
			line: "_italic_",
			want: []inlineSpan{{start: 0, end: 8, text: "italic", kind: spanItalic}},
		},
		{
			name: "link",
			line: "[docs](https://example.com)",
			want: []inlineSpan{{start: 0, end: 27, text: "docs", url: "https://example.com", kind: spanLink}},
		},
		{
			name: "bold then italic",
			line: "**bold** and *italic*",
			want: []inlineSpan{
				{start: 0, end: 8, text: "bold", kind: spanBold},
				{start: 13, end: 21, text: "italic", kind: spanItalic},
			},
		},
		{
			name: "italic nested in bold is dropped",
			line: "**bold *nested* text**",
			want: []inlineSpan{{start: 0, end: 22, text: "bold *nested* text", kind: spanBold}},
		},
		{
			name: "link nested in bold is dropped",
			line: "**see [docs](https://x)**",
			want: []inlineSpan{{start: 0, end: 25, text: "see [docs](https://x)", kind: spanBold}},
		},
		{
			name: "bold inside link text is dropped",
			line: "[**docs**](https://x)",
			want: []inlineSpan{{start: 0, end: 21, text: "**docs**", url: "https://x", kind: spanLink}},
		},
		{
			name: "no markup",
			line: "plain text",
			want: nil,
		},
		{
			name: "single star never closes",
			line: "2 * 3 equals 6",
			want: nil,
		},
		{
			name: "unclosed bold",
			line: "**never closed",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scanSpans(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scanSpans(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestItalicCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		delim byte
		want  []inlineSpan
	}{
		{
			name:  "simple pair",
			line:  "a *b* c",
			delim: '*',
			want:  []inlineSpan{{start: 2, end: 5, text: "b", kind: spanItalic}},
		},
		{
			name:  "double delimiter is never an opener",
			line:  "**bold**",
			delim: '*',
			want:  nil,
		},
		{
			name:  "bold stars yield no italic openers",
			line:  "**bold** and *italic*",
			delim: '*',
			want:  []inlineSpan{{start: 13, end: 21, text: "italic", kind: spanItalic}},
		},
		{
			name:  "unclosed opener",
			line:  "a *b",
			delim: '*',
			want:  nil,
		},
		{
			name:  "underscore pair",
			line:  "snake_case_name",
			delim: '_',
			want:  []inlineSpan{{start: 5, end: 11, text: "case", kind: spanItalic}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := italicCandidates(tt.line, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("italicCandidates(%q, %q) = %#v, want %#v", tt.line, tt.delim, got, tt.want)
			}
		})
	}
}

func TestLineRuns_NewlinePlacement(t *testing.T) {
	t.Parallel()

	// A trailing plain run absorbs the newline; a styled final run gets a
	// separate plain newline run.
	plain := lineRuns("some **bold** text")
	if got := plain[len(plain)-1].text; got != " text\n" {
		t.Errorf("trailing plain run = %q, want %q", got, " text\n")
	}

	styled := lineRuns("ends with **bold**")
	last := styled[len(styled)-1]
	if last.span != nil || last.text != "\n" {
		t.Errorf("final run = %+v, want plain newline run", last)
	}
	if prev := styled[len(styled)-2]; prev.span == nil || prev.text != "bold" {
		t.Errorf("penultimate run = %+v, want bold span run", prev)
	}
}

func TestLineRuns_CoverLine(t *testing.T) {
	t.Parallel()

	// Each run maps back to a contiguous extent of the source line: span
	// runs to their delimited extent, plain runs to themselves. Together
	// they rebuild the line exactly, so no source byte is dropped or
	// styled twice.
	lines := []string{
		"plain",
		"**a** b *c* d [e](f)",
		"*leading* and trailing **bold**",
		"**bold *nested* text**",
		"2 * 3 * 4",
	}
	for _, line := range lines {
		var rebuilt strings.Builder
		for _, r := range lineRuns(line) {
			if r.span != nil {
				rebuilt.WriteString(line[r.span.start:r.span.end])
				continue
			}
			rebuilt.WriteString(r.text)
		}
		if got := strings.TrimSuffix(rebuilt.String(), "\n"); got != line {
			t.Errorf("runs rebuild %q, want %q", got, line)
		}
	}
}

func TestScanInlineLine(t *testing.T) {
	t.Parallel()

	ops, next := scanInlineLine("see [docs](https://example.com) now", 10)

	want := []EditOperation{
		InsertText{Index: 10, Text: "see "},
		InsertText{Index: 14, Text: "docs"},
		SetCharacterStyle{Start: 14, End: 18, Style: CharacterStyle{LinkURL: "https://example.com"}},
		InsertText{Index: 18, Text: " now\n"},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("ops = %#v, want %#v", ops, want)
	}
	if next != 23 {
		t.Errorf("next cursor = %d, want 23", next)
	}
}
