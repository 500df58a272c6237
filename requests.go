package md2docs

import (
	"fmt"
	"strings"
)

// Google Docs batchUpdate wire types. Field names and nesting mirror the
// REST API (documents.batchUpdate); only the request kinds the compiler
// produces are modeled, plus the content delete used for full replaces.
// The compiler never talks to the network; callers hand these to their
// own Docs client.

// BatchUpdate is the JSON body for documents.batchUpdate.
type BatchUpdate struct {
	Requests []Request `json:"requests"`
}

// Request is a union with exactly one field set.
type Request struct {
	InsertText             *InsertTextRequest             `json:"insertText,omitempty"`
	UpdateTextStyle        *UpdateTextStyleRequest        `json:"updateTextStyle,omitempty"`
	UpdateParagraphStyle   *UpdateParagraphStyleRequest   `json:"updateParagraphStyle,omitempty"`
	CreateParagraphBullets *CreateParagraphBulletsRequest `json:"createParagraphBullets,omitempty"`
	DeleteContentRange     *DeleteContentRangeRequest     `json:"deleteContentRange,omitempty"`
}

// Location is an insertion point.
type Location struct {
	Index int64 `json:"index"`
}

// Range is a half-open [StartIndex, EndIndex) content range.
type Range struct {
	StartIndex int64 `json:"startIndex"`
	EndIndex   int64 `json:"endIndex"`
}

// InsertTextRequest inserts text at a location.
type InsertTextRequest struct {
	Location Location `json:"location"`
	Text     string   `json:"text"`
}

// TextLink is the link target of a styled range.
type TextLink struct {
	URL string `json:"url"`
}

// WeightedFontFamily names a font family. Weight is left to the document
// default.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
}

// RGBColor has channels in [0, 1].
type RGBColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// ColorValue wraps an RGB color the way the Docs API expects.
type ColorValue struct {
	RGBColor RGBColor `json:"rgbColor"`
}

// OptionalColor is the API's nullable color wrapper.
type OptionalColor struct {
	Color ColorValue `json:"color"`
}

// TextStyle carries only the fields named in the accompanying update mask.
type TextStyle struct {
	Bold               *bool               `json:"bold,omitempty"`
	Italic             *bool               `json:"italic,omitempty"`
	Link               *TextLink           `json:"link,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
	BackgroundColor    *OptionalColor      `json:"backgroundColor,omitempty"`
}

// UpdateTextStyleRequest styles a character range.
type UpdateTextStyleRequest struct {
	Range     Range     `json:"range"`
	TextStyle TextStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

// ParagraphStyle carries a named style such as HEADING_2.
type ParagraphStyle struct {
	NamedStyleType string `json:"namedStyleType"`
}

// UpdateParagraphStyleRequest styles the paragraphs in a range.
type UpdateParagraphStyleRequest struct {
	Range          Range          `json:"range"`
	ParagraphStyle ParagraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

// CreateParagraphBulletsRequest turns the paragraphs in a range into list
// items.
type CreateParagraphBulletsRequest struct {
	Range        Range  `json:"range"`
	BulletPreset string `json:"bulletPreset"`
}

// DeleteContentRangeRequest removes a content range.
type DeleteContentRangeRequest struct {
	Range Range `json:"range"`
}

// Requests lowers edit operations to batchUpdate requests 1:1, preserving
// order. Order matters: the client must apply the slice as-is.
func Requests(ops []EditOperation) []Request {
	reqs := make([]Request, 0, len(ops))
	for _, op := range ops {
		reqs = append(reqs, lowerOperation(op))
	}
	return reqs
}

// ReplaceContentRequests builds the payload for a full-document replace:
// delete existing content, then replay the compiled operations. endIndex
// is the document's current end index as reported by documents.get; a
// fresh document reports 2 (just the trailing newline) and needs no
// delete. The final newline itself cannot be deleted, hence endIndex-1.
func ReplaceContentRequests(ops []EditOperation, endIndex int64) []Request {
	reqs := make([]Request, 0, len(ops)+1)
	if endIndex > 2 {
		reqs = append(reqs, Request{DeleteContentRange: &DeleteContentRangeRequest{
			Range: Range{StartIndex: 1, EndIndex: endIndex - 1},
		}})
	}
	return append(reqs, Requests(ops)...)
}

// lowerOperation maps one operation to its wire form. The switch is
// exhaustive over the sealed union; a new variant without a case here is a
// programmer error.
func lowerOperation(op EditOperation) Request {
	switch op := op.(type) {
	case InsertText:
		return Request{InsertText: &InsertTextRequest{
			Location: Location{Index: op.Index},
			Text:     op.Text,
		}}
	case SetCharacterStyle:
		style, fields := lowerCharacterStyle(op.Style)
		return Request{UpdateTextStyle: &UpdateTextStyleRequest{
			Range:     Range{StartIndex: op.Start, EndIndex: op.End},
			TextStyle: style,
			Fields:    fields,
		}}
	case SetParagraphStyle:
		return Request{UpdateParagraphStyle: &UpdateParagraphStyleRequest{
			Range:          Range{StartIndex: op.Start, EndIndex: op.End},
			ParagraphStyle: ParagraphStyle{NamedStyleType: op.NamedStyle},
			Fields:         "namedStyleType",
		}}
	case SetListStyle:
		return Request{CreateParagraphBullets: &CreateParagraphBulletsRequest{
			Range:        Range{StartIndex: op.Start, EndIndex: op.End},
			BulletPreset: string(op.Preset),
		}}
	default:
		panic(fmt.Sprintf("md2docs: unknown edit operation %T", op))
	}
}

// lowerCharacterStyle builds the wire style and its update mask. Mask
// entries keep a fixed order so identical input yields byte-identical
// JSON.
func lowerCharacterStyle(cs CharacterStyle) (TextStyle, string) {
	var style TextStyle
	var fields []string
	if cs.Bold {
		v := true
		style.Bold = &v
		fields = append(fields, "bold")
	}
	if cs.Italic {
		v := true
		style.Italic = &v
		fields = append(fields, "italic")
	}
	if cs.LinkURL != "" {
		style.Link = &TextLink{URL: cs.LinkURL}
		fields = append(fields, "link")
	}
	if cs.FontFamily != "" {
		style.WeightedFontFamily = &WeightedFontFamily{FontFamily: cs.FontFamily}
		fields = append(fields, "weightedFontFamily")
	}
	if cs.Background != nil {
		style.BackgroundColor = &OptionalColor{Color: ColorValue{RGBColor: RGBColor{
			Red:   cs.Background.Red,
			Green: cs.Background.Green,
			Blue:  cs.Background.Blue,
		}}}
		fields = append(fields, "backgroundColor")
	}
	return style, strings.Join(fields, ",")
}
