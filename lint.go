package md2docs

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Diagnostic flags a markdown construct the compiler passes through as
// plain text instead of styling.
type Diagnostic struct {
	// Line is 1-based; 0 when the construct carries no usable source
	// position (inline raw HTML, table cells).
	Line      int    `json:"line"`
	Construct string `json:"construct"`
	Detail    string `json:"detail,omitempty"`
}

// checkParser is shared across calls; goldmark parsers are safe for
// concurrent use.
var checkParser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// CheckCompatibility parses markdown with a full CommonMark/GFM parser and
// reports constructs outside the compiled subset: tables, block quotes,
// raw HTML, images, nested lists and setext headings. Compile itself
// accepts anything; the point of the check is to warn before content
// silently loses formatting.
func CheckCompatibility(markdown string) []Diagnostic {
	source := []byte(markdown)
	root := checkParser.Parser().Parse(text.NewReader(source))

	var diags []Diagnostic
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			diags = append(diags, makeDiagnostic(source, n, "table",
				"tables are inserted as raw pipe-delimited text"))
			return ast.WalkSkipChildren, nil
		case ast.KindBlockquote:
			diags = append(diags, makeDiagnostic(source, n, "block quote",
				"the leading '>' markers are kept verbatim"))
		case ast.KindHTMLBlock, ast.KindRawHTML:
			diags = append(diags, makeDiagnostic(source, n, "raw HTML",
				"HTML is not interpreted"))
		case ast.KindImage:
			diags = append(diags, makeDiagnostic(source, n, "image",
				"images are inserted as their markdown source"))
		case ast.KindList:
			if insideListItem(n) {
				diags = append(diags, makeDiagnostic(source, n, "nested list",
					"nested items are flattened to top-level items"))
			}
		case ast.KindHeading:
			if isSetextHeading(source, n) {
				diags = append(diags, makeDiagnostic(source, n, "setext heading",
					"underlined headings are inserted as plain text; use # syntax"))
			}
		}
		return ast.WalkContinue, nil
	})
	return diags
}

func makeDiagnostic(source []byte, n ast.Node, construct, detail string) Diagnostic {
	return Diagnostic{Line: nodeLine(source, n), Construct: construct, Detail: detail}
}

// nodeLine returns the 1-based line of the node's first source segment,
// descending into children for container nodes that carry no segments of
// their own.
func nodeLine(source []byte, n ast.Node) int {
	for c := n; c != nil; c = c.FirstChild() {
		if c.Type() != ast.TypeInline && c.Lines().Len() > 0 {
			seg := c.Lines().At(0)
			return 1 + bytes.Count(source[:seg.Start], []byte("\n"))
		}
	}
	return 0
}

// isSetextHeading reports whether a parsed heading came from an
// underlined (setext) source line rather than ATX '#' markers. The
// heading's text segment starts after the markers for ATX, so a physical
// line that carries no '#' before the segment is setext.
func isSetextHeading(source []byte, n ast.Node) bool {
	if n.Lines().Len() == 0 {
		return false
	}
	seg := n.Lines().At(0)
	i := seg.Start
	for i > 0 && source[i-1] != '\n' {
		i--
	}
	prefix := bytes.TrimLeft(source[i:seg.Start], " \t")
	return !bytes.HasPrefix(prefix, []byte("#"))
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == ast.KindListItem {
			return true
		}
	}
	return false
}
