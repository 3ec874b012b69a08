package memdom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SetInnerHTML implements fluentdom.Element. The markup is parsed as an
// HTML fragment in this element's context, so content models apply the
// way a browser applies them: "<td>x</td>" parses to a cell under a <tr>
// context but to bare text under a <div>, and script/style contents stay
// raw text. The markup is trusted as given; nothing is sanitized. All
// previous children are replaced.
func (e *Element) SetInnerHTML(markup string) error {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return err
	}

	fresh := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if converted := e.doc.convert(n); converted != nil {
			fresh = append(fresh, converted)
		}
	}
	e.replaceChildren(fresh)
	return nil
}

// convert maps a parsed x/net/html node into a memdom node. Doctypes and
// document wrappers have no place below an element and are dropped.
func (d *Document) convert(n *html.Node) Node {
	switch n.Type {
	case html.ElementNode:
		el := &Element{doc: d, tag: n.Data}
		for _, a := range n.Attr {
			el.attrs = append(el.attrs, Attr{Name: a.Key, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := d.convert(c); child != nil {
				child.setParent(el)
				el.children = append(el.children, child)
			}
		}
		return el
	case html.TextNode:
		return &Text{Data: n.Data}
	case html.CommentNode:
		return &Comment{Data: n.Data}
	default:
		return nil
	}
}
