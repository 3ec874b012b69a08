package fluentdom

import "strings"

// Builder wraps exactly one host element and exposes chainable mutation
// operations over it. Every mutation returns the receiver, so calls chain
// without intermediate variables:
//
//	card := f.Div().
//	    AddClass("card").
//	    Append(f.SpanWithText("hello")).
//	    ToElement()
//
// A Builder never replaces its element; it is created around an
// already-allocated element (by a Factory, or directly via NewBuilder) and
// mutates that element for its whole lifetime.
//
// Errors are sticky. The first operation that fails records its error and
// every later mutation is a no-op, so a chain stops doing work at the
// failure point instead of mutating an element the caller will discard.
// Err reports the recorded error; host failures come back exactly as the
// host produced them. ToElement stays callable either way.
//
// Builders are not safe for concurrent use. The hosts this package targets
// mutate UI state from a single logical thread, and the Builder inherits
// that model.
type Builder struct {
	element Element
	err     error
}

// NewBuilder wraps an externally supplied element. The element must not be
// nil.
func NewBuilder(el Element) *Builder {
	return &Builder{element: el}
}

// SetInnerHTML replaces the element's content with markup, parsed by the
// host. No escaping or sanitizing is performed on the way through; the
// caller is responsible for trusting the markup.
func (b *Builder) SetInnerHTML(markup string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.element.SetInnerHTML(markup); err != nil {
		b.err = err
	}
	return b
}

// SetInnerText replaces the element's content with a literal text node.
// Markup in text is not interpreted: "<b>x</b>" stays the seven characters
// it is.
func (b *Builder) SetInnerText(text string) *Builder {
	if b.err != nil {
		return b
	}
	b.element.SetInnerText(text)
	return b
}

// AddClass appends one class token to the element's class attribute,
// separated from the existing value by a single space. Tokens are not
// deduplicated; adding the same name twice keeps two occurrences. The
// separator is written unconditionally, so an element with no classes ends
// up with a leading space (AddClass("a") on a fresh element yields " a").
func (b *Builder) AddClass(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.element.SetClassName(b.element.ClassName() + " " + name)
	return b
}

// SetClasses replaces the entire class attribute. Multiple tokens are
// joined with single spaces; a single pre-joined string such as
// SetClasses("a b c") is assigned verbatim.
func (b *Builder) SetClasses(classes ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.element.SetClassName(strings.Join(classes, " "))
	return b
}

// Append appends one child to the element's child list. The child must be
// a *Builder, whose underlying element is extracted first, or an Element.
// Any other value records a *TypeMismatchError and leaves the element
// untouched.
func (b *Builder) Append(child any) *Builder {
	if b.err != nil {
		return b
	}
	b.appendChild(child)
	return b
}

// AppendAll appends children in argument order, each through the same type
// check as Append. A slice argument ([]any, []*Builder, []Element) is
// expanded in place, so AppendAll(a, b) and AppendAll(children) both work.
// The first invalid child stops the call with a *TypeMismatchError:
// children before it in the same call are already appended, the element is
// otherwise untouched.
func (b *Builder) AppendAll(children ...any) *Builder {
	if b.err != nil {
		return b
	}
	for _, child := range children {
		switch v := child.(type) {
		case []any:
			for _, c := range v {
				if !b.appendChild(c) {
					return b
				}
			}
		case []*Builder:
			for _, c := range v {
				if !b.appendChild(c) {
					return b
				}
			}
		case []Element:
			for _, c := range v {
				if !b.appendChild(c) {
					return b
				}
			}
		default:
			if !b.appendChild(child) {
				return b
			}
		}
	}
	return b
}

// appendChild resolves the *Builder | Element union and appends, recording
// the first failure. It reports whether the append happened.
func (b *Builder) appendChild(child any) bool {
	var el Element
	switch v := child.(type) {
	case *Builder:
		if v == nil {
			b.err = &TypeMismatchError{Op: "append", Value: child}
			return false
		}
		el = v.element
	case Element:
		el = v
	default:
		b.err = &TypeMismatchError{Op: "append", Value: child}
		return false
	}
	if err := b.element.AppendChild(el); err != nil {
		b.err = err
		return false
	}
	return true
}

// On registers handler to be invoked by the host whenever the named event
// fires on the element. Registrations accumulate rather than replace; when
// the handler runs is the host dispatch loop's decision, not the
// Builder's.
func (b *Builder) On(event string, handler EventHandler) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.element.AddEventListener(event, handler); err != nil {
		b.err = err
	}
	return b
}

// ToElement returns the underlying element without wrapping. It does not
// invalidate the builder; further mutations keep affecting the same
// element. After a failed Build the element is nil.
func (b *Builder) ToElement() Element {
	return b.element
}

// Err returns the first error recorded by a mutation, or nil if the whole
// chain succeeded.
func (b *Builder) Err() error {
	return b.err
}
