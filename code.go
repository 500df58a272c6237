package md2docs

import (
	"regexp"

	"github.com/alnah/go-md2docs/internal/textlen"
)

// A well-formed fenced code block: opening fence with optional language
// tag, at least one body line, closing fence. Anchored to the whole block.
var fencedCodePattern = regexp.MustCompile("(?s)^```(\\w*)\\n(.*?)\\n```$")

// emitCodeBlock emits a fenced code block: the body plus a blank line,
// with a monospace character style over exactly the body. The language tag
// is recognized but not used for styling.
//
// A fence that never closes (or otherwise fails the anchored pattern)
// emits nothing and leaves the cursor untouched.
func emitCodeBlock(block string, cursor int64, style CodeStyle) ([]EditOperation, int64) {
	m := fencedCodePattern.FindStringSubmatch(block)
	if m == nil {
		return nil, cursor
	}
	body := m[2]
	n := int64(textlen.UTF16(body))
	bg := style.Background
	ops := []EditOperation{
		InsertText{Index: cursor, Text: body + "\n\n"},
		SetCharacterStyle{
			Start: cursor,
			End:   cursor + n,
			Style: CharacterStyle{FontFamily: style.FontFamily, Background: &bg},
		},
	}
	return ops, cursor + n + 2
}
