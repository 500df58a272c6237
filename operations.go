package md2docs

import "strconv"

// EditOperation is one atomic instruction for the document-editing client.
// It is a sealed union of exactly four variants: InsertText,
// SetCharacterStyle, SetParagraphStyle and SetListStyle. Consumers switch
// on the concrete type and must handle all four.
//
// All indices are 1-based UTF-16 code unit offsets into the target
// document, matching Google Docs addressing. Style ranges are half-open:
// [Start, End).
type EditOperation interface {
	editOperation()
}

// InsertText inserts Text at Index. Text is inserted exactly as given,
// newlines included.
type InsertText struct {
	Index int64
	Text  string
}

// SetCharacterStyle applies inline formatting over [Start, End). The range
// always falls within text inserted by a preceding InsertText.
type SetCharacterStyle struct {
	Start int64
	End   int64
	Style CharacterStyle
}

// SetParagraphStyle applies a named paragraph style (HEADING_1..HEADING_6)
// over [Start, End).
type SetParagraphStyle struct {
	Start      int64
	End        int64
	NamedStyle string
}

// SetListStyle turns the paragraphs overlapping [Start, End) into list
// items using Preset.
type SetListStyle struct {
	Start  int64
	End    int64
	Preset ListPreset
}

func (InsertText) editOperation()        {}
func (SetCharacterStyle) editOperation() {}
func (SetParagraphStyle) editOperation() {}
func (SetListStyle) editOperation()      {}

// CharacterStyle describes inline text formatting. The zero value means no
// styling. LinkURL is set only for link runs; FontFamily and Background
// only for code blocks.
type CharacterStyle struct {
	Bold       bool
	Italic     bool
	LinkURL    string
	FontFamily string
	Background *Color
}

// Color is an RGB color with channel values in [0.0, 1.0].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

// ListPreset selects a Google Docs bullet preset.
type ListPreset string

// Bullet presets accepted by the Docs API.
const (
	ListPresetNumbered ListPreset = "NUMBERED_DECIMAL_ALPHA_ROMAN"
	ListPresetBullet   ListPreset = "BULLET_DISC_CIRCLE_SQUARE"
)

// headingStyle returns the named paragraph style for a heading level (1-6).
func headingStyle(level int) string {
	return "HEADING_" + strconv.Itoa(level)
}
