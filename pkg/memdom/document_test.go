package memdom

import (
	"errors"
	"testing"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()

	t.Run("valid tags", func(t *testing.T) {
		for _, tag := range []string{"div", "span", "p", "h1", "x-widget", "foo_bar"} {
			el, err := doc.NewElement(tag)
			if err != nil {
				t.Errorf("NewElement(%q): %v", tag, err)
				continue
			}
			if el.TagName() != tag {
				t.Errorf("TagName = %q, want %q", el.TagName(), tag)
			}
		}
	})

	t.Run("tags are lowercased", func(t *testing.T) {
		el, err := doc.NewElement("DIV")
		if err != nil {
			t.Fatalf("NewElement: %v", err)
		}
		if el.TagName() != "div" {
			t.Errorf("TagName = %q, want div", el.TagName())
		}
	})

	t.Run("invalid tags", func(t *testing.T) {
		for _, tag := range []string{"", "1div", "di v", "div!", "-x", "_x", "a/b", "<div>"} {
			_, err := doc.NewElement(tag)
			var de *DOMError
			if !errors.As(err, &de) {
				t.Errorf("NewElement(%q): err = %v, want DOMError", tag, err)
				continue
			}
			if de.Name != "InvalidCharacterError" {
				t.Errorf("NewElement(%q): Name = %q, want InvalidCharacterError", tag, de.Name)
			}
			if de.Code() != 5 {
				t.Errorf("NewElement(%q): Code = %d, want 5", tag, de.Code())
			}
		}
	})

	t.Run("interface form returns untyped nil on failure", func(t *testing.T) {
		el, err := doc.CreateElement("")
		if err == nil {
			t.Fatal("err = nil, want InvalidCharacterError")
		}
		if el != nil {
			t.Errorf("el = %v, want nil interface", el)
		}
	})

	t.Run("fresh element is detached and empty", func(t *testing.T) {
		el, err := doc.NewElement("div")
		if err != nil {
			t.Fatalf("NewElement: %v", err)
		}
		if el.Parent() != nil {
			t.Errorf("Parent = %v, want nil", el.Parent())
		}
		if len(el.ChildNodes()) != 0 {
			t.Errorf("ChildNodes len = %d, want 0", len(el.ChildNodes()))
		}
		if el.ClassName() != "" {
			t.Errorf("ClassName = %q, want empty", el.ClassName())
		}
	})
}

func TestDOMError(t *testing.T) {
	err := domErr("HierarchyRequestError", "no room for <%s>", "div")
	if err.Error() != "HierarchyRequestError: no room for <div>" {
		t.Errorf("Error = %q", err.Error())
	}
	if err.Code() != 3 {
		t.Errorf("Code = %d, want 3", err.Code())
	}

	unknown := &DOMError{Name: "MadeUpError", Message: "x"}
	if unknown.Code() != 0 {
		t.Errorf("Code = %d, want 0 for unknown name", unknown.Code())
	}
}
