package md2docs

import "regexp"

// Blocks are separated by one or more blank lines, i.e. two or more
// consecutive newlines.
var blockSeparatorPattern = regexp.MustCompile(`\n{2,}`)

// splitBlocks splits markdown into blocks on blank-line separators. Blocks
// keep their interior single newlines and any leading or trailing
// whitespace. Empty blocks are dropped, so empty input yields no blocks.
func splitBlocks(markdown string) []string {
	parts := blockSeparatorPattern.Split(markdown, -1)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		blocks = append(blocks, p)
	}
	return blocks
}
