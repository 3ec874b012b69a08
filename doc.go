// Package fluentdom is a minimal fluent wrapper around host DOM element
// creation and mutation.
//
// The package knows nothing about rendering: it drives an injected host
// through two small interfaces, Document (allocate elements) and Element
// (content, class attribute, children, event listeners). Any host
// implementing them works; the in-memory reference host lives in
// pkg/memdom.
//
// # Building elements
//
// A Factory is bound to a document context and hands out Builders:
//
//	doc := memdom.NewDocument()
//	f := fluentdom.NewFactory(doc)
//
//	list := f.Div().
//	    SetClasses("list", "compact").
//	    AppendAll(
//	        f.PWithText("first"),
//	        f.PWithText("second"),
//	    ).
//	    ToElement()
//
// ToElement hands back the raw host element for insertion into a live
// tree; inserting it is the application's job, not this package's.
//
// # Errors
//
// Append and AppendAll accept a *Builder or an Element and reject
// everything else with a *TypeMismatchError before touching the element.
// Host failures (an invalid tag in Build, an event name the host refuses)
// are passed through untranslated. The first failure in a chain parks the
// builder: later mutations are skipped and Err reports what went wrong.
//
//	b := f.Div().Append(42).AddClass("never-applied")
//	if err := b.Err(); err != nil {
//	    // err is a *fluentdom.TypeMismatchError
//	}
//
// # Concurrency
//
// Everything here is synchronous and single-threaded. No call blocks, and
// neither Builder nor Factory is safe for concurrent use; event handlers
// registered through On run whenever the host's dispatch loop decides.
package fluentdom
