package fluentdom

// Factory produces host elements and wraps them in Builders. It holds a
// borrowed Document and nothing else; every creation call is independent
// and yields a fresh element, so one long-lived factory can serve a whole
// application.
type Factory struct {
	doc Document
}

// NewFactory binds a factory to a document context. The context is used,
// not owned; closing or replacing it is the caller's concern.
func NewFactory(doc Document) *Factory {
	return &Factory{doc: doc}
}

// Document returns the bound document context.
func (f *Factory) Document() Document {
	return f.doc
}

// CreateElement allocates a raw element of the given tag and returns it
// unwrapped. Host errors come back unchanged.
func (f *Factory) CreateElement(tag string) (Element, error) {
	return f.doc.CreateElement(tag)
}

// Build allocates an element of the given tag and wraps it in a new
// Builder. If the host refuses the tag, the failure becomes the builder's
// recorded error: mutations on it are no-ops, ToElement returns nil, and
// Err returns the host's error.
func (f *Factory) Build(tag string) *Builder {
	el, err := f.doc.CreateElement(tag)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{element: el}
}

// SpanWithText builds a <span> whose content is the literal text.
func (f *Factory) SpanWithText(text string) *Builder {
	return f.Span().SetInnerText(text)
}

// SpanWithChildren builds a <span> with children appended in order.
// Children follow Append's *Builder | Element union.
func (f *Factory) SpanWithChildren(children ...any) *Builder {
	return f.Span().AppendAll(children...)
}

// PWithText builds a <p> whose content is the literal text.
func (f *Factory) PWithText(text string) *Builder {
	return f.P().SetInnerText(text)
}

// Sectioning and heading elements

func (f *Factory) Header() *Builder  { return f.Build("header") }
func (f *Factory) Footer() *Builder  { return f.Build("footer") }
func (f *Factory) Main() *Builder    { return f.Build("main") }
func (f *Factory) Nav() *Builder     { return f.Build("nav") }
func (f *Factory) Section() *Builder { return f.Build("section") }
func (f *Factory) Article() *Builder { return f.Build("article") }
func (f *Factory) H1() *Builder      { return f.Build("h1") }
func (f *Factory) H2() *Builder      { return f.Build("h2") }
func (f *Factory) H3() *Builder      { return f.Build("h3") }
func (f *Factory) H4() *Builder      { return f.Build("h4") }
func (f *Factory) H5() *Builder      { return f.Build("h5") }
func (f *Factory) H6() *Builder      { return f.Build("h6") }

// Text content elements

func (f *Factory) Div() *Builder  { return f.Build("div") }
func (f *Factory) P() *Builder    { return f.Build("p") }
func (f *Factory) Span() *Builder { return f.Build("span") }
func (f *Factory) Pre() *Builder  { return f.Build("pre") }
func (f *Factory) Ul() *Builder   { return f.Build("ul") }
func (f *Factory) Ol() *Builder   { return f.Build("ol") }
func (f *Factory) Li() *Builder   { return f.Build("li") }

// Inline text semantics

func (f *Factory) A() *Builder      { return f.Build("a") }
func (f *Factory) Strong() *Builder { return f.Build("strong") }
func (f *Factory) Em() *Builder     { return f.Build("em") }
func (f *Factory) Code() *Builder   { return f.Build("code") }

// Table elements

func (f *Factory) Table() *Builder { return f.Build("table") }
func (f *Factory) THead() *Builder { return f.Build("thead") }
func (f *Factory) TBody() *Builder { return f.Build("tbody") }
func (f *Factory) Tr() *Builder    { return f.Build("tr") }
func (f *Factory) Td() *Builder    { return f.Build("td") }
func (f *Factory) Th() *Builder    { return f.Build("th") }

// Forms and embedded content

func (f *Factory) Form() *Builder   { return f.Build("form") }
func (f *Factory) Input() *Builder  { return f.Build("input") }
func (f *Factory) Label() *Builder  { return f.Build("label") }
func (f *Factory) Button() *Builder { return f.Build("button") }
func (f *Factory) Img() *Builder    { return f.Build("img") }
