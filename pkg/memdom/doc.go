// Package memdom is the in-memory reference host for fluentdom.
//
// It implements the fluentdom.Document and fluentdom.Element interfaces
// with real DOM behavior where the library's contract depends on it:
// createElement-style tag validation, literal text assignment, fragment
// parsing for SetInnerHTML, child reparenting with cycle checks, and
// accumulating event listeners with in-process dispatch. Failures carry
// the web platform's DOMException names (InvalidCharacterError,
// HierarchyRequestError, WrongDocumentError, SyntaxError).
//
// # Trees
//
// A tree is made of three node types: *Element, *Text, and *Comment.
// Elements keep their attributes in insertion order and expose the usual
// inspection surface (GetAttribute, TextContent, InnerHTML, OuterHTML,
// Children, Parent).
//
//	doc := memdom.NewDocument()
//	el, _ := doc.NewElement("div")
//	el.SetAttribute("id", "x")
//	_ = el.SetInnerHTML("<p>hi</p>")
//	fmt.Println(el.OuterHTML()) // <div id="x"><p>hi</p></div>
//
// # Parsing and serialization
//
// SetInnerHTML parses markup with golang.org/x/net/html in the element's
// own context, so content models apply the way a browser applies them
// (tr inside table scope, raw text inside script and style). OuterHTML
// serializes deterministically: attributes in insertion order, text and
// attribute values escaped, void elements without closing tags.
//
// # Events
//
// Dispatch delivers an event to the listeners registered on one element,
// in registration order. There is no bubbling, capture, or default-action
// machinery; memdom is a host for building and inspecting trees, not a
// browser.
//
// memdom trees are not safe for concurrent use.
package memdom
