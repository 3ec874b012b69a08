package gallery

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/fluentdom-go/fluentdom"
	"github.com/fluentdom-go/fluentdom/pkg/memdom"
)

const doctype = "<!DOCTYPE html>\n"

// attrSetter is the host-side surface the scaffold needs beyond the
// builder API.
type attrSetter interface {
	SetAttribute(name, value string)
}

// serializer is any host element that can render itself as markup.
type serializer interface {
	OuterHTML() string
}

// RenderPage renders a demo inside the shared gallery scaffold on a fresh
// document.
func RenderPage(demo Demo) (string, error) {
	doc := memdom.NewDocument()
	f := fluentdom.NewFactory(doc)
	return renderShell(f, demo.Title, demo.Name, demo.Build(f))
}

// RenderIndex renders the gallery index listing all demos.
func RenderIndex() (string, error) {
	doc := memdom.NewDocument()
	f := fluentdom.NewFactory(doc)

	list := f.Div().SetClasses("cards")
	for _, d := range demos {
		link := f.A().SetInnerText("Open")
		setAttr(link, "href", "/demo/"+d.Name)
		list.Append(f.Div().SetClasses("card").AppendAll(
			f.H2().SetInnerText(d.Title),
			f.PWithText(d.Summary),
			link,
		))
	}

	content := f.Section().
		SetClasses("demo", "demo-index").
		AppendAll(
			f.H1().SetInnerText("Gallery"),
			list,
		)
	return renderShell(f, "Gallery", "", content)
}

// renderShell wraps content in the shared page scaffold and serializes the
// whole document. Builder errors from the content chain surface unchanged.
func renderShell(f *fluentdom.Factory, title, active string, content *fluentdom.Builder) (string, error) {
	if err := content.Err(); err != nil {
		return "", err
	}

	head := f.Build("head")
	head.SetInnerHTML(`<meta charset="utf-8"><title>` + html.EscapeString(title) +
		`</title><link rel="stylesheet" href="/static/gallery.css">`)

	header := f.Header().
		SetClasses("gallery-header").
		AppendAll(
			f.H1().SetInnerText("fluentdom gallery"),
			navBar(f, active),
		)

	footer := f.Footer().
		SetClasses("gallery-footer").
		Append(f.PWithText("Rendered through the fluent builder API."))

	page := f.Build("html").AppendAll(
		head,
		f.Build("body").AppendAll(
			header,
			f.Main().SetClasses("gallery-main").Append(content),
			footer,
		),
	)
	setAttr(page, "lang", "en")

	if err := page.Err(); err != nil {
		return "", err
	}

	ser, ok := page.ToElement().(serializer)
	if !ok {
		return "", fmt.Errorf("gallery: host %T cannot serialize", page.ToElement())
	}
	return doctype + ser.OuterHTML(), nil
}

// navBar links every registered demo, marking the active one.
func navBar(f *fluentdom.Factory, active string) *fluentdom.Builder {
	list := f.Ul()
	for _, d := range demos {
		link := f.A().SetInnerText(d.Title)
		setAttr(link, "href", "/demo/"+d.Name)
		item := f.Li().Append(link)
		if d.Name == active {
			item.AddClass("active")
		}
		list.Append(item)
	}
	return f.Nav().SetClasses("gallery-nav").Append(list)
}

// setAttr sets a host-side attribute when the host supports it.
func setAttr(b *fluentdom.Builder, name, value string) {
	if el, ok := b.ToElement().(attrSetter); ok {
		el.SetAttribute(name, value)
	}
}
