package fluentdom_test

import (
	"errors"
	"testing"

	"github.com/fluentdom-go/fluentdom"
	"github.com/fluentdom-go/fluentdom/pkg/domtest"
	"github.com/fluentdom-go/fluentdom/pkg/memdom"
)

// stubDocument fails every creation with a fixed error.
type stubDocument struct {
	err error
}

func (s *stubDocument) CreateElement(string) (fluentdom.Element, error) {
	return nil, s.err
}

func TestFactoryBuild(t *testing.T) {
	f := domtest.NewFactory()

	t.Run("tag fidelity", func(t *testing.T) {
		for _, tag := range []string{"div", "span", "p", "section", "x-widget"} {
			el := f.Build(tag).ToElement()
			domtest.ExpectTag(t, el, tag)
		}
	})

	t.Run("every build is a fresh element", func(t *testing.T) {
		a := f.Div().ToElement()
		b := f.Div().ToElement()
		if a == b {
			t.Error("two builds returned the same element")
		}
	})

	t.Run("host rejection becomes the builder error", func(t *testing.T) {
		b := f.Build("not a tag")
		var de *memdom.DOMError
		if !errors.As(b.Err(), &de) {
			t.Fatalf("Err = %v, want DOMError", b.Err())
		}
		if de.Name != "InvalidCharacterError" {
			t.Errorf("Name = %q, want InvalidCharacterError", de.Name)
		}
		if b.ToElement() != nil {
			t.Errorf("ToElement = %v, want nil", b.ToElement())
		}
	})

	t.Run("mutations after failed build are no-ops", func(t *testing.T) {
		b := f.Build("not a tag").AddClass("x").SetInnerText("y")
		if b.ToElement() != nil {
			t.Error("mutations on a failed build must not panic or resurrect it")
		}
	})

	t.Run("document error passes through unchanged", func(t *testing.T) {
		hostErr := errors.New("document is closed")
		bad := fluentdom.NewFactory(&stubDocument{err: hostErr})
		if err := bad.Build("div").Err(); err != hostErr {
			t.Errorf("Err = %v, want the host error unchanged", err)
		}
	})
}

func TestFactoryCreateElement(t *testing.T) {
	f := domtest.NewFactory()

	t.Run("returns the raw element", func(t *testing.T) {
		el, err := f.CreateElement("div")
		if err != nil {
			t.Fatalf("CreateElement: %v", err)
		}
		domtest.ExpectTag(t, el, "div")
	})

	t.Run("host error unchanged", func(t *testing.T) {
		hostErr := errors.New("no elements today")
		bad := fluentdom.NewFactory(&stubDocument{err: hostErr})
		if _, err := bad.CreateElement("div"); err != hostErr {
			t.Errorf("err = %v, want the host error unchanged", err)
		}
	})
}

func TestFactoryShorthands(t *testing.T) {
	f := domtest.NewFactory()

	tests := []struct {
		tag   string
		build func() *fluentdom.Builder
	}{
		{"div", f.Div},
		{"span", f.Span},
		{"p", f.P},
		{"header", f.Header},
		{"footer", f.Footer},
		{"main", f.Main},
		{"nav", f.Nav},
		{"section", f.Section},
		{"article", f.Article},
		{"h1", f.H1},
		{"h2", f.H2},
		{"h3", f.H3},
		{"ul", f.Ul},
		{"ol", f.Ol},
		{"li", f.Li},
		{"a", f.A},
		{"strong", f.Strong},
		{"em", f.Em},
		{"code", f.Code},
		{"pre", f.Pre},
		{"table", f.Table},
		{"thead", f.THead},
		{"tbody", f.TBody},
		{"tr", f.Tr},
		{"td", f.Td},
		{"th", f.Th},
		{"form", f.Form},
		{"input", f.Input},
		{"label", f.Label},
		{"button", f.Button},
		{"img", f.Img},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			domtest.ExpectTag(t, tt.build().ToElement(), tt.tag)
		})
	}
}

func TestFactorySpanWithText(t *testing.T) {
	f := domtest.NewFactory()
	el := f.SpanWithText("hello").ToElement()
	domtest.ExpectTag(t, el, "span")
	domtest.ExpectText(t, el, "hello")
}

func TestFactorySpanWithChildren(t *testing.T) {
	f := domtest.NewFactory()

	t.Run("ordered children", func(t *testing.T) {
		el := f.SpanWithChildren(f.Em(), f.Strong()).ToElement()
		domtest.ExpectTag(t, el, "span")
		domtest.ExpectContains(t, el, "<em></em><strong></strong>")
	})

	t.Run("invalid child is rejected", func(t *testing.T) {
		b := f.SpanWithChildren(42)
		var tm *fluentdom.TypeMismatchError
		if !errors.As(b.Err(), &tm) {
			t.Errorf("Err = %v, want TypeMismatchError", b.Err())
		}
	})
}

func TestFactoryPWithText(t *testing.T) {
	f := domtest.NewFactory()
	el := f.PWithText("hi").ToElement()
	domtest.ExpectTag(t, el, "p")
	domtest.ExpectText(t, el, "hi")
}

func TestFactoryEndToEnd(t *testing.T) {
	f := domtest.NewFactory()

	el := f.Div().
		AddClass("container").
		AppendAll(f.PWithText("a"), f.PWithText("b")).
		ToElement()

	domtest.ExpectTag(t, el, "div")
	domtest.ExpectContains(t, el, "container")
	domtest.ExpectChildCount(t, el, 2)
	domtest.ExpectContains(t, el, "<p>a</p><p>b</p>")
}

func TestFactoryStateless(t *testing.T) {
	doc := memdom.NewDocument()
	f := fluentdom.NewFactory(doc)

	if f.Document() != doc {
		t.Error("Document() did not return the bound context")
	}

	// Builders from the same factory stay independent.
	a := f.Div().AddClass("a")
	b := f.Div().AddClass("b")
	domtest.ExpectClass(t, a.ToElement(), " a")
	domtest.ExpectClass(t, b.ToElement(), " b")
}
