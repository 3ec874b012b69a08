package gallery

import (
	"github.com/fluentdom-go/fluentdom"
)

// Demo represents a gallery demo page.
type Demo struct {
	Name    string
	Title   string
	Summary string
	Build   func(f *fluentdom.Factory) *fluentdom.Builder
}

// demos is the registry of all gallery demo pages.
// Add new demos here to automatically update navigation and routing.
var demos = []Demo{
	{"hello", "Hello", "Factory shorthands and literal text", buildHello},
	{"cards", "Cards", "Nested composition with class lists", buildCards},
	{"features", "Features", "A table rendered from an embedded dataset", buildFeatures},
	{"form", "Form", "Form controls through injected markup", buildForm},
	{"events", "Events", "Listener registration and in-process dispatch", buildEvents},
	{"kitchen", "Kitchen Sink", "Headings, lists, and code blocks", buildKitchen},
}

// Demos returns all registered demos in display order.
func Demos() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
