package xmlfmt

import (
	"strings"
	"testing"
)

func TestFormatIndentsNestedElements(t *testing.T) {
	in := `<root><child attr="1">x</child><other/></root>`
	out := Format(in)
	if out == in {
		t.Fatalf("compact document came back unformatted")
	}
	if !strings.Contains(out, "\n  <child attr=\"1\">x</child>") {
		t.Fatalf("child not indented two spaces:\n%s", out)
	}
	if !strings.Contains(out, "\n  <other/>") {
		t.Fatalf("empty element not indented:\n%s", out)
	}
}

func TestFormatPreservesAttributeOrder(t *testing.T) {
	in := `<e b="2" a="1" c="3"></e>`
	out := Format(in)
	if !strings.Contains(out, `b="2" a="1" c="3"`) {
		t.Fatalf("attribute order changed:\n%s", out)
	}
}

func TestFormatIdempotent(t *testing.T) {
	in := `<a><b><c>text</c></b><b2 k="v"/></a>`
	once := Format(in)
	twice := Format(once)
	if once != twice {
		t.Fatalf("formatting is not idempotent:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
}

func TestFormatPassesThroughNonXML(t *testing.T) {
	in := "not xml at all"
	if out := Format(in); out != in {
		t.Fatalf("non-XML input changed: %q", out)
	}
}

func TestFormatPassesThroughMalformedXML(t *testing.T) {
	cases := []string{
		"<open><inner></open>",
		"<unclosed attr=",
		"<a>text & more</a>",
	}
	for _, in := range cases {
		if out := Format(in); out != in {
			t.Fatalf("malformed input %q changed to %q", in, out)
		}
	}
}

func TestFormatPreservesTextContent(t *testing.T) {
	out := Format(`<msg><line>hello world</line></msg>`)
	if !strings.Contains(out, ">hello world<") {
		t.Fatalf("text content lost:\n%s", out)
	}
}
