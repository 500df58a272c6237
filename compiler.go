package md2docs

import "strings"

// Compiler turns markdown into an ordered sequence of edit operations
// against an append-only document whose insertable region starts at index
// 1. It is stateless: Compile may be called concurrently and the same
// input always yields a byte-identical operation sequence, which is what
// makes client-side retries safe.
type Compiler struct {
	cfg compilerConfig
}

// NewCompiler creates a Compiler. Use options to customize code-block
// styling and list presets.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		cfg: compilerConfig{
			code:     DefaultCodeStyle,
			numbered: ListPresetNumbered,
			bullet:   ListPresetBullet,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompileResult is the output of one compile call. Operations is produced
// once and never mutated afterwards.
type CompileResult struct {
	Operations []EditOperation
	// EndIndex is the cursor after the last insert: 1 plus the total
	// UTF-16 length of all inserted text. 1 for empty input.
	EndIndex int64
}

// Compile converts markdown with a default Compiler.
func Compile(markdown string) *CompileResult {
	return NewCompiler().Compile(markdown)
}

// Compile parses markdown and emits the operation sequence. It never
// fails: constructs outside the recognized subset degrade to plain text,
// and malformed code fences drop their block (see emitCodeBlock).
//
// The cursor starts at 1 and is advanced only by the UTF-16 length of text
// just inserted; every emitter receives the cursor and returns the
// operations alongside the advanced cursor.
func (c *Compiler) Compile(markdown string) *CompileResult {
	var ops []EditOperation
	cursor := int64(1)

	for _, block := range splitBlocks(markdown) {
		var blockOps []EditOperation
		switch classifyBlock(block) {
		case blockCode:
			blockOps, cursor = emitCodeBlock(block, cursor, c.cfg.code)
		case blockList:
			blockOps, cursor = emitListBlock(block, cursor, c.cfg.numbered, c.cfg.bullet)
		default:
			blockOps, cursor = c.emitTextBlock(block, cursor)
		}
		ops = append(ops, blockOps...)
	}

	return &CompileResult{Operations: ops, EndIndex: cursor}
}

// emitTextBlock handles header-led and paragraph blocks. The first
// non-blank line is tried as a header; every other line goes through the
// inline span scanner. Whitespace-only lines insert a bare newline.
//
// The block-separator newline is appended unless the block contributed
// nothing but a header line: the header's own newline already separates
// it from the next block. Code and list blocks manage their own trailing
// separators.
func (c *Compiler) emitTextBlock(block string, cursor int64) ([]EditOperation, int64) {
	var ops []EditOperation
	sawContent := false
	scanned := 0

	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			ops = append(ops, InsertText{Index: cursor, Text: "\n"})
			cursor++
			scanned++
			continue
		}
		if !sawContent {
			sawContent = true
			if headerOps, next, ok := emitHeaderLine(line, cursor); ok {
				ops = append(ops, headerOps...)
				cursor = next
				continue
			}
		}
		lineOps, next := scanInlineLine(line, cursor)
		ops = append(ops, lineOps...)
		cursor = next
		scanned++
	}

	if scanned > 0 {
		ops = append(ops, InsertText{Index: cursor, Text: "\n"})
		cursor++
	}
	return ops, cursor
}
