package md2docs

import (
	"encoding/json"
	"testing"
)

func TestRequests_WireShapes(t *testing.T) {
	t.Parallel()

	bg := Color{Red: 0.95, Green: 0.95, Blue: 0.95}
	tests := []struct {
		name string
		op   EditOperation
		want string
	}{
		{
			name: "insert text",
			op:   InsertText{Index: 1, Text: "Title\n"},
			want: `{"insertText":{"location":{"index":1},"text":"Title\n"}}`,
		},
		{
			name: "bold",
			op:   SetCharacterStyle{Start: 1, End: 5, Style: CharacterStyle{Bold: true}},
			want: `{"updateTextStyle":{"range":{"startIndex":1,"endIndex":5},` +
				`"textStyle":{"bold":true},"fields":"bold"}}`,
		},
		{
			name: "italic",
			op:   SetCharacterStyle{Start: 10, End: 16, Style: CharacterStyle{Italic: true}},
			want: `{"updateTextStyle":{"range":{"startIndex":10,"endIndex":16},` +
				`"textStyle":{"italic":true},"fields":"italic"}}`,
		},
		{
			name: "link",
			op:   SetCharacterStyle{Start: 2, End: 6, Style: CharacterStyle{LinkURL: "https://example.com"}},
			want: `{"updateTextStyle":{"range":{"startIndex":2,"endIndex":6},` +
				`"textStyle":{"link":{"url":"https://example.com"}},"fields":"link"}}`,
		},
		{
			name: "code font and background",
			op: SetCharacterStyle{Start: 1, End: 9, Style: CharacterStyle{
				FontFamily: "Consolas",
				Background: &bg,
			}},
			want: `{"updateTextStyle":{"range":{"startIndex":1,"endIndex":9},` +
				`"textStyle":{"weightedFontFamily":{"fontFamily":"Consolas"},` +
				`"backgroundColor":{"color":{"rgbColor":{"red":0.95,"green":0.95,"blue":0.95}}}},` +
				`"fields":"weightedFontFamily,backgroundColor"}}`,
		},
		{
			name: "heading",
			op:   SetParagraphStyle{Start: 1, End: 7, NamedStyle: "HEADING_1"},
			want: `{"updateParagraphStyle":{"range":{"startIndex":1,"endIndex":7},` +
				`"paragraphStyle":{"namedStyleType":"HEADING_1"},"fields":"namedStyleType"}}`,
		},
		{
			name: "list bullets",
			op:   SetListStyle{Start: 1, End: 4, Preset: ListPresetBullet},
			want: `{"createParagraphBullets":{"range":{"startIndex":1,"endIndex":4},` +
				`"bulletPreset":"BULLET_DISC_CIRCLE_SQUARE"}}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reqs := Requests([]EditOperation{tt.op})
			if len(reqs) != 1 {
				t.Fatalf("got %d requests, want 1", len(reqs))
			}
			raw, err := json.Marshal(reqs[0])
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(raw) != tt.want {
				t.Errorf("json = %s, want %s", raw, tt.want)
			}
		})
	}
}

func TestRequests_PreservesOrder(t *testing.T) {
	t.Parallel()

	result := Compile("# Title\n\nplain text")
	reqs := Requests(result.Operations)

	if len(reqs) != len(result.Operations) {
		t.Fatalf("got %d requests for %d operations", len(reqs), len(result.Operations))
	}
	if reqs[0].InsertText == nil || reqs[1].UpdateParagraphStyle == nil {
		t.Errorf("request order does not follow operation order: %#v", reqs[:2])
	}
}

func TestReplaceContentRequests(t *testing.T) {
	t.Parallel()

	ops := []EditOperation{InsertText{Index: 1, Text: "hi\n"}}

	t.Run("existing content is deleted first", func(t *testing.T) {
		t.Parallel()
		reqs := ReplaceContentRequests(ops, 42)
		if len(reqs) != 2 {
			t.Fatalf("got %d requests, want 2", len(reqs))
		}
		del := reqs[0].DeleteContentRange
		if del == nil {
			t.Fatal("first request is not a delete")
		}
		if del.Range.StartIndex != 1 || del.Range.EndIndex != 41 {
			t.Errorf("delete range = %+v, want [1, 41)", del.Range)
		}
		if reqs[1].InsertText == nil {
			t.Error("second request is not the insert")
		}
	})

	t.Run("fresh document needs no delete", func(t *testing.T) {
		t.Parallel()
		reqs := ReplaceContentRequests(ops, 2)
		if len(reqs) != 1 || reqs[0].DeleteContentRange != nil {
			t.Errorf("requests = %#v, want insert only", reqs)
		}
	})
}
