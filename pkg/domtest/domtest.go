// Package domtest provides test helpers for code that builds element
// trees with fluentdom. Helpers take the element under test plus a
// *testing.T and report failures with the serialized markup, so tests
// assert on behavior without hand-rolling a host.
package domtest

import (
	"strings"
	"testing"

	"github.com/fluentdom-go/fluentdom"
	"github.com/fluentdom-go/fluentdom/pkg/memdom"
)

// NewFactory returns a factory bound to a fresh in-memory document.
//
// Example:
//
//	f := domtest.NewFactory()
//	el := f.Div().AddClass("card").ToElement()
func NewFactory() *fluentdom.Factory {
	return fluentdom.NewFactory(memdom.NewDocument())
}

// OuterHTML returns the element's serialized markup. It fails the test
// for a nil element or a host element that cannot serialize itself.
func OuterHTML(t *testing.T, el fluentdom.Element) string {
	t.Helper()
	if el == nil {
		t.Fatalf("element is nil")
	}
	h, ok := el.(interface{ OuterHTML() string })
	if !ok {
		t.Fatalf("element type %T does not expose OuterHTML", el)
	}
	return h.OuterHTML()
}

// ExpectTag asserts the element's tag name.
func ExpectTag(t *testing.T, el fluentdom.Element, tag string) {
	t.Helper()
	if el == nil {
		t.Fatalf("element is nil, want <%s>", tag)
	}
	if got := el.TagName(); got != tag {
		t.Errorf("tag = %q, want %q", got, tag)
	}
}

// ExpectText asserts the element's literal text content.
func ExpectText(t *testing.T, el fluentdom.Element, want string) {
	t.Helper()
	if el == nil {
		t.Fatalf("element is nil, want text %q", want)
	}
	tc, ok := el.(interface{ TextContent() string })
	if !ok {
		t.Fatalf("element type %T does not expose TextContent", el)
	}
	if got := tc.TextContent(); got != want {
		t.Errorf("text content = %q, want %q", got, want)
	}
}

// ExpectClass asserts the element's class attribute, exactly. Leading or
// trailing spaces count; use ExpectContains for looser checks.
func ExpectClass(t *testing.T, el fluentdom.Element, want string) {
	t.Helper()
	if el == nil {
		t.Fatalf("element is nil, want class %q", want)
	}
	if got := el.ClassName(); got != want {
		t.Errorf("class = %q, want %q", got, want)
	}
}

// ExpectChildCount asserts how many element children el has.
func ExpectChildCount(t *testing.T, el fluentdom.Element, want int) {
	t.Helper()
	if el == nil {
		t.Fatalf("element is nil, want %d children", want)
	}
	c, ok := el.(interface{ Children() []*memdom.Element })
	if !ok {
		t.Fatalf("element type %T does not expose Children", el)
	}
	if got := len(c.Children()); got != want {
		t.Errorf("child count = %d, want %d\n%s", got, want, truncate(OuterHTML(t, el), 500))
	}
}

// ExpectContains asserts that the serialized markup contains the
// substring.
func ExpectContains(t *testing.T, el fluentdom.Element, expected string) {
	t.Helper()
	html := OuterHTML(t, el)
	if !strings.Contains(html, expected) {
		t.Errorf("expected markup to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the serialized markup does not contain
// the substring.
func ExpectNotContains(t *testing.T, el fluentdom.Element, unexpected string) {
	t.Helper()
	html := OuterHTML(t, el)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected markup to not contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// truncate shortens long markup in failure messages.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
