package md2docs

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2docs/internal/textlen"
)

// Full item patterns: marker, at least one space, non-empty item text.
var (
	orderedItemPattern   = regexp.MustCompile(`^\s*(\d+)\.\s+(.+)$`)
	unorderedItemPattern = regexp.MustCompile(`^\s*[*+-]\s+(.+)$`)
)

// emitListBlock emits one list item per line: the item text plus a newline,
// then a list style over the item text only (the newline is excluded so the
// bullet does not bleed into the next paragraph). Ordered items get the
// numbered preset, unordered the bullet preset.
//
// A line matching neither item pattern is inserted as plain text with its
// newline and receives no list style.
//
// One extra newline terminates the block.
func emitListBlock(block string, cursor int64, numbered, bullet ListPreset) ([]EditOperation, int64) {
	var ops []EditOperation
	for _, line := range strings.Split(block, "\n") {
		var item string
		var preset ListPreset
		if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
			item, preset = m[2], numbered
		} else if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
			item, preset = m[1], bullet
		} else {
			ops = append(ops, InsertText{Index: cursor, Text: line + "\n"})
			cursor += int64(textlen.UTF16(line)) + 1
			continue
		}

		n := int64(textlen.UTF16(item))
		ops = append(ops,
			InsertText{Index: cursor, Text: item + "\n"},
			SetListStyle{Start: cursor, End: cursor + n, Preset: preset},
		)
		cursor += n + 1
	}

	ops = append(ops, InsertText{Index: cursor, Text: "\n"})
	return ops, cursor + 1
}
