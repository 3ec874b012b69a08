package memdom

import "strings"

// voidElements cannot have children and serialize without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// rawTextElements carry their text children unescaped, per the HTML
// parsing rules for raw text.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// OuterHTML serializes the element and its subtree. Output is
// deterministic: attributes in insertion order, every attribute written
// as name="value" (booleans as name=""), text escaped except inside raw
// text elements, void elements without closing tags.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

// InnerHTML serializes only the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	e.writeChildren(&b)
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if voidElements[e.tag] {
		return
	}

	e.writeChildren(b)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func (e *Element) writeChildren(b *strings.Builder) {
	raw := rawTextElements[e.tag]
	for _, n := range e.children {
		switch v := n.(type) {
		case *Element:
			v.writeTo(b)
		case *Text:
			if raw {
				b.WriteString(v.Data)
			} else {
				b.WriteString(escapeHTML(v.Data))
			}
		case *Comment:
			b.WriteString("<!--")
			b.WriteString(v.Data)
			b.WriteString("-->")
		}
	}
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in attribute values. On top of
// the content entities it escapes whitespace characters that would break
// attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
