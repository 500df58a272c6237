// Package md2docs compiles Markdown into Google Docs edit operations.
//
// # Quick Start
//
// Compile markdown and lower the result to batchUpdate requests:
//
//	result := md2docs.Compile("# Title\n\nHello **world**")
//	body := md2docs.BatchUpdate{Requests: md2docs.Requests(result.Operations)}
//	payload, _ := json.Marshal(body)
//
// The payload is the JSON body for the Docs API documents.batchUpdate
// method. This package never performs network I/O or authentication; apply
// the requests with your own Docs client, in order, against a document
// whose insertable region starts at index 1.
//
// # Compilation Model
//
// Input is split into blocks on blank lines, each block is classified
// (fenced code, list, header-led, paragraph) and emitted as insert and
// style operations. Inline bold, italic and link spans are scanned per
// line; overlapping candidates are resolved first-wins by start offset.
// A running cursor threads through every emitter, advanced only by the
// UTF-16 length of text just inserted; the Docs API counts UTF-16 code
// units.
//
// Compilation never fails. Markdown outside the recognized subset
// degrades to plain text, and a fenced code block whose fence never
// closes is dropped entirely. Use CheckCompatibility to surface such
// degradations before they happen.
//
// # Customization
//
// Use functional options to adjust code-block styling and list presets:
//
//	c := md2docs.NewCompiler(
//	    md2docs.WithCodeFont("Roboto Mono"),
//	    md2docs.WithCodeBackground(md2docs.Color{Red: 0.9, Green: 0.9, Blue: 0.9}),
//	)
//	result := c.Compile(content)
//
// # Replacing Document Content
//
// For a full-document replace, fetch the document's end index with
// documents.get and use ReplaceContentRequests, which prepends the
// delete-prior-content request before the replay:
//
//	reqs := md2docs.ReplaceContentRequests(result.Operations, endIndex)
package md2docs
