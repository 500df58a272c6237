package md2docs

import (
	"reflect"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     []string
	}{
		{
			name:     "empty input",
			markdown: "",
			want:     []string{},
		},
		{
			name:     "only newlines",
			markdown: "\n\n\n",
			want:     []string{},
		},
		{
			name:     "single block",
			markdown: "one paragraph",
			want:     []string{"one paragraph"},
		},
		{
			name:     "two blocks",
			markdown: "first\n\nsecond",
			want:     []string{"first", "second"},
		},
		{
			name:     "many blank lines collapse to one separator",
			markdown: "first\n\n\n\n\nsecond",
			want:     []string{"first", "second"},
		},
		{
			name:     "interior single newline stays inside the block",
			markdown: "line one\nline two\n\nnext",
			want:     []string{"line one\nline two", "next"},
		},
		{
			name:     "leading and trailing separators drop empty blocks",
			markdown: "\n\nmiddle\n\n",
			want:     []string{"middle"},
		},
		{
			name:     "trailing single newline stays on the block",
			markdown: "text\n",
			want:     []string{"text\n"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := splitBlocks(tt.markdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitBlocks(%q) = %#v, want %#v", tt.markdown, got, tt.want)
			}
		})
	}
}
