package md2docs

import (
	"regexp"

	"github.com/alnah/go-md2docs/internal/textlen"
)

// ATX header: 1-6 '#' characters, a space, then the heading text.
var headerLinePattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// emitHeaderLine emits a heading: the text plus a newline, then a
// HEADING_<level> paragraph style over the full inserted range. The range
// includes the newline because Docs paragraph styles address the whole
// paragraph, terminator and all.
//
// Returns ok=false with no operations when the line is not a header, so
// callers fall through to plain-line handling.
func emitHeaderLine(line string, cursor int64) (ops []EditOperation, next int64, ok bool) {
	m := headerLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, cursor, false
	}

	text := m[2] + "\n"
	n := int64(textlen.UTF16(text))
	ops = []EditOperation{
		InsertText{Index: cursor, Text: text},
		SetParagraphStyle{Start: cursor, End: cursor + n, NamedStyle: headingStyle(len(m[1]))},
	}
	return ops, cursor + n, true
}
