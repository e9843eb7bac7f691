// Package xmlfmt normalizes decrypted XML with canonical two-space
// indentation. This is a readability pass, not a semantic transform:
// element names, attributes (and their order) and text content come
// through untouched. Input that does not parse as XML is returned
// unchanged, so a malformed payload never aborts a file.
package xmlfmt

import "github.com/beevik/etree"

// indentSpaces per nesting level.
const indentSpaces = 2

// Format pretty-prints s if it parses as an XML document and returns
// it as-is otherwise.
func Format(s string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return s
	}
	if doc.Root() == nil {
		// tokenized fine but there is no document here (plain text,
		// comments only, ...) -- nothing to normalize
		return s
	}
	doc.Indent(indentSpaces)
	out, err := doc.WriteToString()
	if err != nil {
		return s
	}
	return out
}
