package report

import _ "embed"

//go:embed methods.md
var methodsDoc []byte

// MethodsMarkdown returns the methods document in Markdown source form.
func MethodsMarkdown() []byte {
	return methodsDoc
}
