package md2docs_test

import (
	"encoding/json"
	"fmt"

	md2docs "github.com/alnah/go-md2docs"
)

func ExampleCompile() {
	result := md2docs.Compile("# Hi\n\n- one\n- two")
	for _, op := range result.Operations {
		fmt.Printf("%T\n", op)
	}
	fmt.Println(result.EndIndex)
	// Output:
	// md2docs.InsertText
	// md2docs.SetParagraphStyle
	// md2docs.InsertText
	// md2docs.SetListStyle
	// md2docs.InsertText
	// md2docs.SetListStyle
	// md2docs.InsertText
	// 13
}

func ExampleRequests() {
	result := md2docs.Compile("# Hi")
	raw, _ := json.Marshal(md2docs.BatchUpdate{Requests: md2docs.Requests(result.Operations)})
	fmt.Println(string(raw))
	// Output:
	// {"requests":[{"insertText":{"location":{"index":1},"text":"Hi\n"}},{"updateParagraphStyle":{"range":{"startIndex":1,"endIndex":4},"paragraphStyle":{"namedStyleType":"HEADING_1"},"fields":"namedStyleType"}}]}
}
