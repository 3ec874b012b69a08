package fluentdom

// Document is the host context a Factory is bound to. It only needs to
// allocate elements; attaching them to a live tree is the embedding
// application's business.
type Document interface {
	// CreateElement allocates a fresh element with the given tag name.
	// Tag validity rules are the host's own; an invalid tag fails with
	// whatever error the host defines for it.
	CreateElement(tag string) (Element, error)
}

// Element is the capability set a host element has to provide for the
// Builder to operate on it. It is deliberately narrow: content assignment,
// a class attribute, child insertion, and event registration. Hosts are
// free to expose more, but the Builder never requires more.
type Element interface {
	// TagName reports the element's tag name.
	TagName() string

	// SetInnerHTML replaces the element's content with the given markup,
	// parsed by the host. The markup reaches the host untouched.
	SetInnerHTML(markup string) error

	// SetInnerText replaces the element's content with a single literal
	// text node. The text is never parsed as markup.
	SetInnerText(text string)

	// ClassName returns the current class attribute value.
	ClassName() string

	// SetClassName replaces the class attribute value.
	SetClassName(class string)

	// AppendChild appends child to the end of the element's child list.
	// Hosts reject children they cannot adopt (nil references, cycles,
	// nodes from another document implementation).
	AppendChild(child Element) error

	// AddEventListener registers handler for the named event.
	// Registrations accumulate; two handlers for the same event are both
	// invoked when it fires.
	AddEventListener(event string, handler EventHandler) error
}

// EventHandler is invoked by the host's dispatch loop when an event it was
// registered for fires. When handlers run is entirely the host's decision.
type EventHandler func(Event)

// Event is the data argument handed to an EventHandler.
type Event interface {
	// Type is the event name the handler was registered under.
	Type() string

	// Target is the element the event fired on.
	Target() Element
}
