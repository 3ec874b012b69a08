package gallery

import (
	"fmt"

	"github.com/fluentdom-go/fluentdom"
	"github.com/fluentdom-go/fluentdom/pkg/memdom"
)

func buildHello(f *fluentdom.Factory) *fluentdom.Builder {
	return f.Section().
		SetClasses("demo", "demo-hello").
		AppendAll(
			f.H1().SetInnerText("Hello, fluentdom"),
			f.PWithText("Every element on this page was composed through the fluent builder."),
			f.Div().SetClasses("row").AppendAll(
				f.SpanWithText("one"),
				f.SpanWithText("two"),
				f.SpanWithChildren(f.Strong().SetInnerText("three")),
			),
		)
}

func buildCards(f *fluentdom.Factory) *fluentdom.Builder {
	grid := f.Div().SetClasses("cards")
	for _, c := range []struct {
		title, body string
	}{
		{"Builders", "Each mutation returns the same builder, so chains read top to bottom."},
		{"Factories", "A factory wraps one document and stamps out wrapped elements."},
		{"Hosts", "Any document implementation can sit behind the same API."},
	} {
		grid.Append(card(f, c.title, c.body))
	}

	return f.Section().
		SetClasses("demo", "demo-cards").
		AppendAll(
			f.H1().SetInnerText("Cards"),
			grid,
		)
}

func card(f *fluentdom.Factory, title, body string) *fluentdom.Builder {
	return f.Div().
		SetClasses("card").
		AppendAll(
			f.H2().SetInnerText(title).AddClass("card-title"),
			f.PWithText(body),
		)
}

func buildFeatures(f *fluentdom.Factory) *fluentdom.Builder {
	section := f.Section().
		SetClasses("demo", "demo-features").
		Append(f.H1().SetInnerText("Feature matrix"))

	rows, err := loadFeatures()
	if err != nil {
		return section.Append(f.PWithText("failed to load dataset: " + err.Error()).SetClasses("error"))
	}

	head := f.THead().Append(f.Tr().AppendAll(
		f.Th().SetInnerText("Feature"),
		f.Th().SetInnerText("Builder call"),
		f.Th().SetInnerText("Host behavior"),
		f.Th().SetInnerText("Escaped"),
	))

	body := f.TBody()
	for _, row := range rows {
		escaped := "no"
		if row.Escapes {
			escaped = "yes"
		}
		body.Append(f.Tr().AppendAll(
			f.Td().SetInnerText(row.Name),
			f.Td().Append(f.Code().SetInnerText(row.Operation)),
			f.Td().SetInnerText(row.Host),
			f.Td().SetInnerText(escaped),
		))
	}

	return section.Append(f.Table().SetClasses("features").AppendAll(head, body))
}

func buildForm(f *fluentdom.Factory) *fluentdom.Builder {
	form := f.Form().
		SetClasses("demo-form").
		AppendAll(
			formField(f, "name", "Name", "text"),
			formField(f, "email", "Email", "email"),
			f.Button().SetInnerText("Subscribe").SetClasses("primary"),
		)

	return f.Section().
		SetClasses("demo", "demo-form-page").
		AppendAll(
			f.H1().SetInnerText("Form"),
			f.PWithText("Attributes outside the builder surface arrive through injected markup."),
			form,
		)
}

// formField pairs a label with an input. The input needs type and name
// attributes, which the builder surface does not carry, so the control
// arrives as injected markup.
func formField(f *fluentdom.Factory, name, label, typ string) *fluentdom.Builder {
	control := f.Div().SetClasses("control")
	control.SetInnerHTML(`<input type="` + typ + `" name="` + name + `">`)

	return f.Div().
		SetClasses("field").
		AppendAll(
			f.Label().SetInnerText(label),
			control,
		)
}

func buildEvents(f *fluentdom.Factory) *fluentdom.Builder {
	clicks := 0
	button := f.Button().
		SetInnerText("Click me").
		SetClasses("primary").
		On("click", func(fluentdom.Event) { clicks++ }).
		On("click", func(fluentdom.Event) { clicks++ })

	// Drive the handlers in process so the page shows real dispatch counts.
	listeners := 0
	if el, ok := button.ToElement().(*memdom.Element); ok {
		el.Dispatch("click", nil)
		el.Dispatch("click", nil)
		listeners = el.ListenerCount("click")
	}

	return f.Section().
		SetClasses("demo", "demo-events").
		AppendAll(
			f.H1().SetInnerText("Events"),
			f.PWithText(fmt.Sprintf(
				"The button carries %d click listeners; two dispatches ran handlers %d times.",
				listeners, clicks)),
			button,
		)
}

func buildKitchen(f *fluentdom.Factory) *fluentdom.Builder {
	shoppingList := f.Ul().AppendAll(
		f.Li().SetInnerText("builders"),
		f.Li().SetInnerText("factories"),
		f.Li().AppendAll(
			f.SpanWithText("hosts "),
			f.Em().SetInnerText("(injected)"),
		),
	)

	steps := f.Ol().AppendAll(
		f.Li().SetInnerText("create"),
		f.Li().SetInnerText("chain"),
		f.Li().SetInnerText("serialize"),
	)

	snippet := f.Pre().Append(
		f.Code().SetInnerText(`f.Div().SetClasses("card").Append(f.SpanWithText("hi"))`),
	)

	return f.Section().
		SetClasses("demo", "demo-kitchen").
		AppendAll(
			f.H1().SetInnerText("Kitchen Sink"),
			f.H2().SetInnerText("Lists"),
			shoppingList,
			steps,
			f.H2().SetInnerText("Code"),
			snippet,
		)
}
