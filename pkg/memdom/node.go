package memdom

// Node is one member of a memdom tree: *Element, *Text, or *Comment. The
// set is closed; the unexported methods keep foreign types out so parent
// pointers stay consistent.
type Node interface {
	parentElement() *Element
	setParent(p *Element)
}

// Text is a literal text node. Data is the unescaped text; escaping
// happens at serialization time.
type Text struct {
	Data string

	parent *Element
}

func (t *Text) parentElement() *Element { return t.parent }
func (t *Text) setParent(p *Element)    { t.parent = p }

// Comment is an HTML comment node.
type Comment struct {
	Data string

	parent *Element
}

func (c *Comment) parentElement() *Element { return c.parent }
func (c *Comment) setParent(p *Element)    { c.parent = p }
