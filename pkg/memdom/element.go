package memdom

import (
	"strings"

	"github.com/fluentdom-go/fluentdom"
)

// Attr is a single element attribute. Elements keep attributes in
// insertion order, the way the platform's attribute map presents them.
type Attr struct {
	Name  string
	Value string
}

// Element is an in-memory DOM element. It implements fluentdom.Element
// and adds the inspection surface tests and tooling rely on. The zero
// value is not usable; elements come from a Document or from parsing.
type Element struct {
	doc       *Document
	tag       string
	attrs     []Attr
	children  []Node
	parent    *Element
	listeners map[string][]fluentdom.EventHandler
}

func (e *Element) parentElement() *Element { return e.parent }
func (e *Element) setParent(p *Element)    { e.parent = p }

// TagName reports the element's (lowercase) tag name.
func (e *Element) TagName() string {
	return e.tag
}

// Parent returns the element's parent, or nil for a detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// ChildNodes returns a snapshot of the element's child list, including
// text and comment nodes.
func (e *Element) ChildNodes() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Children returns a snapshot of the element children only.
func (e *Element) Children() []*Element {
	var out []*Element
	for _, n := range e.children {
		if el, ok := n.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// GetAttribute returns the attribute's value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the attribute is present, telling an empty
// value apart from an absent one.
func (e *Element) HasAttribute(name string) bool {
	for _, a := range e.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, updating it in place when it already
// exists so its position in the serialized output is stable.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a snapshot of the attribute list in order.
func (e *Element) Attributes() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// ClassName returns the class attribute value.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// SetClassName replaces the class attribute value.
func (e *Element) SetClassName(class string) {
	e.SetAttribute("class", class)
}

// SetInnerText replaces the element's content with one literal text node.
// Empty text leaves the element with no children at all, the way the
// platform's setter does.
func (e *Element) SetInnerText(text string) {
	if text == "" {
		e.replaceChildren(nil)
		return
	}
	e.replaceChildren([]Node{&Text{Data: text}})
}

// TextContent returns the concatenated text of all descendant text nodes.
// Comments contribute nothing.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, n := range e.children {
		switch v := n.(type) {
		case *Element:
			v.writeText(b)
		case *Text:
			b.WriteString(v.Data)
		}
	}
}

// AppendChild implements fluentdom.Element. The child must be a memdom
// element: nil fails with HierarchyRequestError, elements from another
// host implementation fail with WrongDocumentError, and inserting an
// element into itself or a descendant fails with HierarchyRequestError.
// A child that already has a parent is moved, not copied.
func (e *Element) AppendChild(child fluentdom.Element) error {
	if child == nil {
		return domErr("HierarchyRequestError", "cannot append a nil child to <%s>", e.tag)
	}
	c, ok := child.(*Element)
	if !ok {
		return domErr("WrongDocumentError", "child of type %T does not belong to this document implementation", child)
	}
	if c == nil {
		return domErr("HierarchyRequestError", "cannot append a nil child to <%s>", e.tag)
	}
	return e.appendNode(c)
}

// AppendNode appends any memdom node, with the same hierarchy rules as
// AppendChild.
func (e *Element) AppendNode(n Node) error {
	if n == nil {
		return domErr("HierarchyRequestError", "cannot append a nil node to <%s>", e.tag)
	}
	return e.appendNode(n)
}

func (e *Element) appendNode(n Node) error {
	if el, ok := n.(*Element); ok {
		for a := e; a != nil; a = a.parent {
			if a == el {
				return domErr("HierarchyRequestError", "<%s> is the insertion point or one of its ancestors", el.tag)
			}
		}
	}
	if p := n.parentElement(); p != nil {
		p.removeChild(n)
	}
	n.setParent(e)
	e.children = append(e.children, n)
	return nil
}

// Remove detaches the element from its parent. Detaching an already
// detached element is a no-op.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.removeChild(e)
	}
}

func (e *Element) removeChild(n Node) {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// replaceChildren swaps the whole child list, detaching the old children.
func (e *Element) replaceChildren(fresh []Node) {
	for _, n := range e.children {
		n.setParent(nil)
	}
	e.children = fresh
	for _, n := range fresh {
		n.setParent(e)
	}
}

// AddEventListener implements fluentdom.Element. An empty event name
// fails with SyntaxError. A nil handler registers nothing, silently, the
// way the platform treats a null listener. Handlers for the same event
// accumulate in registration order.
func (e *Element) AddEventListener(event string, handler fluentdom.EventHandler) error {
	if event == "" {
		return domErr("SyntaxError", "event name must not be empty")
	}
	if handler == nil {
		return nil
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]fluentdom.EventHandler)
	}
	e.listeners[event] = append(e.listeners[event], handler)
	return nil
}

// ListenerCount reports how many handlers are registered for the event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch delivers an event to this element's listeners in registration
// order and reports how many ran. Handlers registered while dispatching
// are not invoked until the next Dispatch. There is no bubbling.
func (e *Element) Dispatch(event string, detail any) int {
	handlers := e.listeners[event]
	if len(handlers) == 0 {
		return 0
	}
	snapshot := make([]fluentdom.EventHandler, len(handlers))
	copy(snapshot, handlers)
	evt := &Event{eventType: event, target: e, Detail: detail}
	for _, h := range snapshot {
		h(evt)
	}
	return len(snapshot)
}

// Event is the value memdom hands to event handlers. Detail carries
// whatever the dispatcher attached.
type Event struct {
	eventType string
	target    *Element

	Detail any
}

// Type implements fluentdom.Event.
func (e *Event) Type() string {
	return e.eventType
}

// Target implements fluentdom.Event.
func (e *Event) Target() fluentdom.Element {
	return e.target
}

// TargetElement is Target with the concrete node type.
func (e *Event) TargetElement() *Element {
	return e.target
}
