package md2docs

import (
	"regexp"
	"strings"
)

// blockKind is the shape a block takes after classification.
type blockKind int

const (
	blockParagraph blockKind = iota
	blockCode
	blockList
	blockHeaderLed
)

// Item prefixes for list classification. The marker must be followed by a
// space, so "*emphasis*" never classifies a block as a list.
var (
	orderedPrefixPattern   = regexp.MustCompile(`^\s*\d+\.\s`)
	unorderedPrefixPattern = regexp.MustCompile(`^\s*[*+-]\s`)
)

// classifyBlock decides which emitter owns a block. Priority order: code,
// list, header-led, paragraph.
//
// A block opening with a backtick fence belongs to the code emitter even
// when the fence is malformed or never closes; the emitter then emits
// nothing for it rather than leaking half-fenced text into the document.
func classifyBlock(block string) blockKind {
	if strings.HasPrefix(block, "```") {
		return blockCode
	}
	if isListBlock(block) {
		return blockList
	}
	if headerLinePattern.MatchString(firstNonBlankLine(block)) {
		return blockHeaderLed
	}
	return blockParagraph
}

// isListBlock reports whether every non-blank line carries an ordered or
// unordered item prefix. At least one such line is required, so an
// all-whitespace block stays a paragraph.
func isListBlock(block string) bool {
	items := 0
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !orderedPrefixPattern.MatchString(line) && !unorderedPrefixPattern.MatchString(line) {
			return false
		}
		items++
	}
	return items > 0
}

func firstNonBlankLine(block string) string {
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}
