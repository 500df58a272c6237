package md2docs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-md2docs/internal/textlen"
)

// spanKind is the formatting family of an inline span.
type spanKind int

const (
	spanBold spanKind = iota
	spanItalic
	spanLink
)

// inlineSpan is a detected formatted region within one line. start and end
// are byte offsets into the line, delimiters included; text is the content
// with delimiters stripped.
type inlineSpan struct {
	start int
	end   int
	text  string
	url   string // links only
	kind  spanKind
}

// Bold and link candidates come from regex scans; italic needs a character
// lexer because its delimiter must be a lone star or underscore, which RE2
// cannot express without lookarounds.
var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	linkPattern = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// scanSpans finds all bold, italic and link candidates in a line, pools
// them, sorts by start offset, and resolves overlaps first-wins: a
// candidate starting before the end of the most recently kept one is
// dropped, whatever its family or length. Nested matches inside a kept
// span are discarded outright, never re-scanned. Ties at the same start
// resolve bold, italic, link because candidates are pooled in that order
// and the sort is stable.
func scanSpans(line string) []inlineSpan {
	var candidates []inlineSpan
	for _, m := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		candidates = append(candidates, inlineSpan{
			start: m[0], end: m[1],
			text: altGroup(line, m),
			kind: spanBold,
		})
	}
	candidates = append(candidates, italicCandidates(line, '*')...)
	candidates = append(candidates, italicCandidates(line, '_')...)
	for _, m := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
		candidates = append(candidates, inlineSpan{
			start: m[0], end: m[1],
			text: line[m[2]:m[3]],
			url:  line[m[4]:m[5]],
			kind: spanLink,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	var kept []inlineSpan
	for _, c := range candidates {
		if len(kept) > 0 && c.start < kept[len(kept)-1].end {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// altGroup returns whichever of a two-branch alternation's capture groups
// matched.
func altGroup(line string, m []int) string {
	if m[2] >= 0 {
		return line[m[2]:m[3]]
	}
	return line[m[4]:m[5]]
}

// italicCandidates scans for single-delimiter italic spans. The opening
// delimiter must stand alone (a star adjacent to another star belongs to
// a bold marker, not an italic one) and the span closes at the nearest
// following delimiter, so the content never contains the delimiter
// itself.
func italicCandidates(line string, delim byte) []inlineSpan {
	var spans []inlineSpan
	for i := 0; i < len(line); i++ {
		if line[i] != delim {
			continue
		}
		if (i > 0 && line[i-1] == delim) || (i+1 < len(line) && line[i+1] == delim) {
			continue
		}
		j := strings.IndexByte(line[i+1:], delim)
		if j < 0 {
			break
		}
		j += i + 1
		spans = append(spans, inlineSpan{
			start: i, end: j + 1,
			text: line[i+1 : j],
			kind: spanItalic,
		})
		i = j
	}
	return spans
}

// run is one left-to-right segment of a line as it will be inserted: a
// surviving span, or the untouched text between and around spans.
type run struct {
	text string
	span *inlineSpan // nil for plain text
}

// lineRuns lays out the kept spans plus surrounding plain text as an
// ordered run list covering the whole line with no gaps, terminated by the
// synthetic newline. The newline is folded into a trailing plain run when
// there is one; after a styled final span it becomes its own plain run so
// the style never covers the line break.
func lineRuns(line string) []run {
	spans := scanSpans(line)

	var runs []run
	pos := 0
	for i := range spans {
		s := &spans[i]
		if s.start > pos {
			runs = append(runs, run{text: line[pos:s.start]})
		}
		runs = append(runs, run{text: s.text, span: s})
		pos = s.end
	}
	if pos < len(line) {
		runs = append(runs, run{text: line[pos:]})
	}

	if n := len(runs); n > 0 && runs[n-1].span == nil {
		runs[n-1].text += "\n"
	} else {
		runs = append(runs, run{text: "\n"})
	}
	return runs
}

// scanInlineLine emits one line's run list: an InsertText per run, plus a
// character style for bold, italic and link runs. The cursor advances by
// every run's length, the synthetic newline included.
func scanInlineLine(line string, cursor int64) ([]EditOperation, int64) {
	var ops []EditOperation
	for _, r := range lineRuns(line) {
		n := int64(textlen.UTF16(r.text))
		ops = append(ops, InsertText{Index: cursor, Text: r.text})
		if r.span != nil {
			var style CharacterStyle
			switch r.span.kind {
			case spanBold:
				style.Bold = true
			case spanItalic:
				style.Italic = true
			case spanLink:
				style.LinkURL = r.span.url
			}
			ops = append(ops, SetCharacterStyle{Start: cursor, End: cursor + n, Style: style})
		}
		cursor += n
	}
	return ops, cursor
}
